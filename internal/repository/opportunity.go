package repository

import (
	"strings"

	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"gorm.io/gorm"
)

type OpportunityRepo interface {
	Create(o *opportunity.FundingOpportunity) error
	FindByID(id uint) (opportunity.FundingOpportunity, error)
	FindByFunder(funderUserID uint) ([]opportunity.FundingOpportunity, error)
	FindAll() ([]opportunity.FundingOpportunity, error)
	Count() (int64, error)
	Save(o *opportunity.FundingOpportunity) error
	Delete(id uint) error
	ListPublic(q opportunity.ListQuery) ([]opportunity.FundingOpportunity, int64, error)
	WithTx(tx *gorm.DB) OpportunityRepo
}

type DBOpportunityRepo struct {
	db *gorm.DB
}

func NewOpportunityRepo(db *gorm.DB) *DBOpportunityRepo {
	return &DBOpportunityRepo{db: db}
}

func (r *DBOpportunityRepo) WithTx(tx *gorm.DB) OpportunityRepo {
	return &DBOpportunityRepo{db: tx}
}

func (r *DBOpportunityRepo) Create(o *opportunity.FundingOpportunity) error {
	return r.db.Create(o).Error
}

func (r *DBOpportunityRepo) FindByID(id uint) (opportunity.FundingOpportunity, error) {
	var o opportunity.FundingOpportunity
	err := r.db.First(&o, id).Error
	return o, err
}

func (r *DBOpportunityRepo) FindByFunder(funderUserID uint) ([]opportunity.FundingOpportunity, error) {
	var list []opportunity.FundingOpportunity
	err := r.db.
		Where("funder_user_id = ?", funderUserID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *DBOpportunityRepo) FindAll() ([]opportunity.FundingOpportunity, error) {
	var list []opportunity.FundingOpportunity
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *DBOpportunityRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&opportunity.FundingOpportunity{}).Count(&n).Error
	return n, err
}

func (r *DBOpportunityRepo) Save(o *opportunity.FundingOpportunity) error {
	return r.db.Save(o).Error
}

func (r *DBOpportunityRepo) Delete(id uint) error {
	return r.db.Delete(&opportunity.FundingOpportunity{}, id).Error
}

// ListPublic applies keyword and tag filters with 1-based pagination.
// Keyword search matches title, description, funder name and tags.
func (r *DBOpportunityRepo) ListPublic(q opportunity.ListQuery) ([]opportunity.FundingOpportunity, int64, error) {
	tx := r.db.Model(&opportunity.FundingOpportunity{})

	if q.Q != "" {
		term := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(funder_name) LIKE ? OR LOWER(tags) LIKE ?",
			term, term, term, term,
		)
	}

	if q.Tags != "" {
		var tagClauses []string
		var args []interface{}
		for _, tag := range strings.Split(q.Tags, ",") {
			tag = strings.TrimSpace(strings.ToLower(tag))
			if tag == "" {
				continue
			}
			tagClauses = append(tagClauses, "LOWER(tags) LIKE ?")
			args = append(args, "%"+tag+"%")
		}
		if len(tagClauses) > 0 {
			tx = tx.Where(strings.Join(tagClauses, " OR "), args...)
		}
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

	var list []opportunity.FundingOpportunity
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}
