package application

import (
	"fmt"

	"github.com/ngobridge/platform-go/internal/config"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/notify"
	"github.com/ngobridge/platform-go/internal/repository"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalNgos          int64 `json:"totalNgos"`
	UnverifiedNgos     int64 `json:"unverifiedNgos"`
	TotalFunders       int64 `json:"totalFunders"`
	TotalProviders     int64 `json:"totalProviders"`
	TotalOpportunities int64 `json:"totalOpportunities"`
	TotalDiscounts     int64 `json:"totalDiscounts"`
}

type AdminService struct {
	Repos    *repository.Repos
	notifier Notifier
}

func NewAdminService(repos *repository.Repos, notifier Notifier) *AdminService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &AdminService{Repos: repos, notifier: notifier}
}

func (s *AdminService) ListUnverifiedNgos() ([]repository.UnverifiedNgo, error) {
	return s.Repos.User.ListUnverifiedNgos()
}

// VerifyNgo flips the verified flag on an NGO account and tells the owner.
func (s *AdminService) VerifyNgo(userID uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Role != user.RoleNgoAdmin {
		return nil, ErrNotNgo
	}
	if u.IsVerified {
		return nil, ErrAlreadyVerified
	}

	u.IsVerified = true
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return nil, err
	}

	const link = "/dashboard"
	s.notifier.Publish(notify.Event{
		UserID:  u.ID,
		Message: "Congratulations! Your NGO account has been verified. You can now apply for funding opportunities.",
		Link:    link,
		Email:   u.Email,
		Subject: "Your Account Has Been Verified!",
		Text: fmt.Sprintf(
			"Hi,\n\nGood news! Your NGO account has been verified by our team. You now have full access to the platform, including applying for funding opportunities.\n\nGo to your dashboard: %s%s",
			config.AppBaseURL, link,
		),
		HTML: fmt.Sprintf(
			"<p>Hi,</p><p>Good news! Your NGO account has been verified by our team. You now have full access to the platform, including applying for funding opportunities.</p><p><a href=%q>Go to Dashboard</a></p>",
			config.AppBaseURL+link,
		),
	})

	return &u, nil
}

func (s *AdminService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.Repos.User.CountUsers("", nil); err != nil {
		return nil, err
	}
	if stats.TotalNgos, err = s.Repos.User.CountUsers(string(user.RoleNgoAdmin), nil); err != nil {
		return nil, err
	}
	unverified := false
	if stats.UnverifiedNgos, err = s.Repos.User.CountUsers(string(user.RoleNgoAdmin), &unverified); err != nil {
		return nil, err
	}
	if stats.TotalFunders, err = s.Repos.User.CountUsers(string(user.RoleFunder), nil); err != nil {
		return nil, err
	}
	if stats.TotalProviders, err = s.Repos.User.CountUsers(string(user.RoleProvider), nil); err != nil {
		return nil, err
	}
	if stats.TotalOpportunities, err = s.Repos.Opportunity.Count(); err != nil {
		return nil, err
	}
	if stats.TotalDiscounts, err = s.Repos.Discount.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminService) ListUsers(page, size int, email, role string) ([]user.User, int64, error) {
	return s.Repos.User.ListUsersPaging(page, size, email, role)
}

// UpdateUser lets an admin change another account's role or verified flag.
// Admins cannot edit their own account through this path.
func (s *AdminService) UpdateUser(adminUserID, targetUserID uint, input user.AdminUpdateUserInput) (*user.User, error) {
	if adminUserID == targetUserID {
		return nil, ErrSelfUpdate
	}

	u, err := s.Repos.User.GetUserByID(targetUserID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		r := user.Role(*input.Role)
		switch r {
		case user.RoleNgoAdmin, user.RoleFunder, user.RoleProvider, user.RoleAdmin:
			u.Role = r
		default:
			return nil, ErrInvalidRole
		}
	}
	if input.IsVerified != nil {
		u.IsVerified = *input.IsVerified
	}

	if err := s.Repos.User.SaveUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AdminService) DeleteUser(adminUserID, targetUserID uint) error {
	if adminUserID == targetUserID {
		return ErrSelfUpdate
	}
	if _, err := s.Repos.User.GetUserByID(targetUserID); err != nil {
		return err
	}
	return s.Repos.User.DeleteUser(targetUserID)
}
