package repository

import (
	"github.com/ngobridge/platform-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(n *notification.Notification) error
	ListUnread(userID uint, limit int) ([]notification.Notification, error)
	MarkRead(userID uint, ids []uint) (int64, error)
	MarkAllRead(userID uint) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	return &DBNotificationRepo{db: tx}
}

func (r *DBNotificationRepo) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) ListUnread(userID uint, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 10
	}
	var list []notification.Notification
	err := r.db.
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// MarkRead flips IsRead for the given ids, scoped to the owner so users
// cannot touch each other's notifications.
func (r *DBNotificationRepo) MarkRead(userID uint, ids []uint) (int64, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) MarkAllRead(userID uint) (int64, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
