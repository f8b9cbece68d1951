package application

import (
	"github.com/ngobridge/platform-go/internal/domain/notification"
	"github.com/ngobridge/platform-go/internal/repository"
)

type NotificationService struct {
	Repos *repository.Repos
}

func NewNotificationService(repos *repository.Repos) *NotificationService {
	return &NotificationService{Repos: repos}
}

func (s *NotificationService) ListUnread(userID uint, limit int) ([]notification.Notification, error) {
	return s.Repos.Notification.ListUnread(userID, limit)
}

func (s *NotificationService) MarkRead(userID uint, ids []uint) (int64, error) {
	return s.Repos.Notification.MarkRead(userID, ids)
}

func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	return s.Repos.Notification.MarkAllRead(userID)
}
