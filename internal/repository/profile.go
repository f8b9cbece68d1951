package repository

import (
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetNgoProfileByUserID(userID uint) (profile.NgoProfile, error)
	SaveNgoProfile(p *profile.NgoProfile) error
	GetFunderProfileByUserID(userID uint) (profile.FunderProfile, error)
	SaveFunderProfile(p *profile.FunderProfile) error
	GetProviderProfileByUserID(userID uint) (profile.ProviderProfile, error)
	SaveProviderProfile(p *profile.ProviderProfile) error
	WithTx(tx *gorm.DB) ProfileRepo
}

type DBProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *DBProfileRepo {
	return &DBProfileRepo{db: db}
}

func (r *DBProfileRepo) WithTx(tx *gorm.DB) ProfileRepo {
	return &DBProfileRepo{db: tx}
}

func (r *DBProfileRepo) GetNgoProfileByUserID(userID uint) (profile.NgoProfile, error) {
	var p profile.NgoProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	return p, err
}

func (r *DBProfileRepo) SaveNgoProfile(p *profile.NgoProfile) error {
	return r.db.Save(p).Error
}

func (r *DBProfileRepo) GetFunderProfileByUserID(userID uint) (profile.FunderProfile, error) {
	var p profile.FunderProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	return p, err
}

func (r *DBProfileRepo) SaveFunderProfile(p *profile.FunderProfile) error {
	return r.db.Save(p).Error
}

func (r *DBProfileRepo) GetProviderProfileByUserID(userID uint) (profile.ProviderProfile, error) {
	var p profile.ProviderProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	return p, err
}

func (r *DBProfileRepo) SaveProviderProfile(p *profile.ProviderProfile) error {
	return r.db.Save(p).Error
}
