package repository

import (
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"gorm.io/gorm"
)

// UnverifiedNgo pairs an unverified NGO account with its profile, when one
// exists, so the admin has something to review.
type UnverifiedNgo struct {
	User    user.User           `json:"user"`
	Profile *profile.NgoProfile `json:"profile"`
}

type UserRepo interface {
	GetUserByEmail(email string) (user.User, error)
	GetUserByID(id uint) (user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	ListUsersPaging(page, limit int, email, role string) ([]user.User, int64, error)
	ListUnverifiedNgos() ([]UnverifiedNgo, error)
	CountUsers(role string, verified *bool) (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) ListUsersPaging(page, limit int, email, role string) ([]user.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	tx := r.db.Model(&user.User{})
	if email != "" {
		tx = tx.Where("email LIKE ?", "%"+email+"%")
	}
	if role != "" {
		tx = tx.Where("role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []user.User
	err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) CountUsers(role string, verified *bool) (int64, error) {
	tx := r.db.Model(&user.User{})
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if verified != nil {
		tx = tx.Where("is_verified = ?", *verified)
	}
	var n int64
	err := tx.Count(&n).Error
	return n, err
}

func (r *DBUserRepo) ListUnverifiedNgos() ([]UnverifiedNgo, error) {
	var users []user.User
	err := r.db.
		Where("role = ? AND is_verified = ?", user.RoleNgoAdmin, false).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	out := make([]UnverifiedNgo, 0, len(users))
	for _, u := range users {
		entry := UnverifiedNgo{User: u}
		var p profile.NgoProfile
		if err := r.db.Where("user_id = ?", u.ID).First(&p).Error; err == nil {
			entry.Profile = &p
		}
		out = append(out, entry)
	}
	return out, nil
}
