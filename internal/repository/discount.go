package repository

import (
	"strings"

	"github.com/ngobridge/platform-go/internal/domain/discount"
	"gorm.io/gorm"
)

type DiscountRepo interface {
	Create(d *discount.DiscountOffer) error
	FindByID(id uint) (discount.DiscountOffer, error)
	FindByProvider(providerUserID uint) ([]discount.DiscountOffer, error)
	FindAll() ([]discount.DiscountOffer, error)
	Count() (int64, error)
	Save(d *discount.DiscountOffer) error
	Delete(id uint) error
	ListPublic(q discount.ListQuery) ([]discount.DiscountOffer, int64, error)
	WithTx(tx *gorm.DB) DiscountRepo
}

type DBDiscountRepo struct {
	db *gorm.DB
}

func NewDiscountRepo(db *gorm.DB) *DBDiscountRepo {
	return &DBDiscountRepo{db: db}
}

func (r *DBDiscountRepo) WithTx(tx *gorm.DB) DiscountRepo {
	return &DBDiscountRepo{db: tx}
}

func (r *DBDiscountRepo) Create(d *discount.DiscountOffer) error {
	return r.db.Create(d).Error
}

func (r *DBDiscountRepo) FindByID(id uint) (discount.DiscountOffer, error) {
	var d discount.DiscountOffer
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDiscountRepo) FindByProvider(providerUserID uint) ([]discount.DiscountOffer, error) {
	var list []discount.DiscountOffer
	err := r.db.
		Where("provider_user_id = ?", providerUserID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *DBDiscountRepo) FindAll() ([]discount.DiscountOffer, error) {
	var list []discount.DiscountOffer
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *DBDiscountRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&discount.DiscountOffer{}).Count(&n).Error
	return n, err
}

func (r *DBDiscountRepo) Save(d *discount.DiscountOffer) error {
	return r.db.Save(d).Error
}

func (r *DBDiscountRepo) Delete(id uint) error {
	return r.db.Delete(&discount.DiscountOffer{}, id).Error
}

func (r *DBDiscountRepo) ListPublic(q discount.ListQuery) ([]discount.DiscountOffer, int64, error) {
	tx := r.db.Model(&discount.DiscountOffer{})

	if q.Q != "" {
		term := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where(
			"LOWER(product_service_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(provider_name) LIKE ?",
			term, term, term,
		)
	}
	if q.Category != "" {
		tx = tx.Where("LOWER(category) = ?", strings.ToLower(q.Category))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := q.Size
	if limit <= 0 {
		limit = 10
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	var list []discount.DiscountOffer
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}
