package repository

import (
	"github.com/ngobridge/platform-go/internal/domain/search"
	"gorm.io/gorm"
)

type SavedSearchRepo interface {
	Create(s *search.SavedSearch) error
	FindByUser(userID uint) ([]search.SavedSearch, error)
	FindOwned(id, userID uint) (search.SavedSearch, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) SavedSearchRepo
}

type DBSavedSearchRepo struct {
	db *gorm.DB
}

func NewSavedSearchRepo(db *gorm.DB) *DBSavedSearchRepo {
	return &DBSavedSearchRepo{db: db}
}

func (r *DBSavedSearchRepo) WithTx(tx *gorm.DB) SavedSearchRepo {
	return &DBSavedSearchRepo{db: tx}
}

func (r *DBSavedSearchRepo) Create(s *search.SavedSearch) error {
	return r.db.Create(s).Error
}

func (r *DBSavedSearchRepo) FindByUser(userID uint) ([]search.SavedSearch, error) {
	var list []search.SavedSearch
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *DBSavedSearchRepo) FindOwned(id, userID uint) (search.SavedSearch, error) {
	var s search.SavedSearch
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&s).Error
	return s, err
}

func (r *DBSavedSearchRepo) Delete(id uint) error {
	return r.db.Delete(&search.SavedSearch{}, id).Error
}
