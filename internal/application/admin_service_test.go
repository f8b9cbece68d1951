package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type adminMocks struct {
	user        *mock.MockUserRepo
	opportunity *mock.MockOpportunityRepo
	discount    *mock.MockDiscountRepo
	notifier    *recorderNotifier
}

func setupAdminServiceMocks(t *testing.T) (*AdminService, adminMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := adminMocks{
		user:        mock.NewMockUserRepo(ctrl),
		opportunity: mock.NewMockOpportunityRepo(ctrl),
		discount:    mock.NewMockDiscountRepo(ctrl),
		notifier:    &recorderNotifier{},
	}
	repos := &repository.Repos{
		User:        m.user,
		Opportunity: m.opportunity,
		Discount:    m.discount,
	}
	return NewAdminService(repos, m.notifier), m
}

// --------------------- VerifyNgo ---------------------

func TestVerifyNgo_Success(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).
		Return(user.User{ID: 5, Email: "ngo@hope.org", Role: user.RoleNgoAdmin}, nil)

	var saved *user.User
	m.user.EXPECT().SaveUser(gomock.Any()).
		DoAndReturn(func(u *user.User) error {
			saved = u
			return nil
		})

	u, err := svc.VerifyNgo(5)
	assert.NoError(t, err)
	assert.True(t, u.IsVerified)
	assert.True(t, saved.IsVerified)

	assert.Len(t, m.notifier.events, 1)
	e := m.notifier.events[0]
	assert.Equal(t, uint(5), e.UserID)
	assert.Contains(t, e.Message, "verified")
	assert.Equal(t, "/dashboard", e.Link)
	assert.Equal(t, "ngo@hope.org", e.Email)
}

func TestVerifyNgo_WrongRole(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(2)).
		Return(user.User{ID: 2, Role: user.RoleFunder, IsVerified: true}, nil)

	_, err := svc.VerifyNgo(2)
	assert.ErrorIs(t, err, ErrNotNgo)
	assert.Empty(t, m.notifier.events)
}

func TestVerifyNgo_AlreadyVerified(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).
		Return(user.User{ID: 5, Role: user.RoleNgoAdmin, IsVerified: true}, nil)

	_, err := svc.VerifyNgo(5)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
	assert.Empty(t, m.notifier.events)
}

func TestVerifyNgo_NotFound(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(404)).
		Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.VerifyNgo(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- Stats ---------------------

func TestStats_AggregatesCounters(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	unverified := false
	m.user.EXPECT().CountUsers("", nil).Return(int64(40), nil)
	m.user.EXPECT().CountUsers("ngo_admin", nil).Return(int64(20), nil)
	m.user.EXPECT().CountUsers("ngo_admin", &unverified).Return(int64(4), nil)
	m.user.EXPECT().CountUsers("funder", nil).Return(int64(12), nil)
	m.user.EXPECT().CountUsers("service_provider", nil).Return(int64(8), nil)
	m.opportunity.EXPECT().Count().Return(int64(15), nil)
	m.discount.EXPECT().Count().Return(int64(6), nil)

	stats, err := svc.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalUsers)
	assert.Equal(t, int64(20), stats.TotalNgos)
	assert.Equal(t, int64(4), stats.UnverifiedNgos)
	assert.Equal(t, int64(12), stats.TotalFunders)
	assert.Equal(t, int64(8), stats.TotalProviders)
	assert.Equal(t, int64(15), stats.TotalOpportunities)
	assert.Equal(t, int64(6), stats.TotalDiscounts)
}

// --------------------- UpdateUser / DeleteUser ---------------------

func TestUpdateUser_SelfUpdateRejected(t *testing.T) {
	svc, _ := setupAdminServiceMocks(t)

	_, err := svc.UpdateUser(1, 1, user.AdminUpdateUserInput{})
	assert.ErrorIs(t, err, ErrSelfUpdate)
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).
		Return(user.User{ID: 5, Role: user.RoleNgoAdmin}, nil)

	bad := "superuser"
	_, err := svc.UpdateUser(1, 5, user.AdminUpdateUserInput{Role: &bad})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateUser_ChangesRoleAndVerified(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).
		Return(user.User{ID: 5, Role: user.RoleNgoAdmin}, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).Return(nil)

	role := "funder"
	verified := true
	u, err := svc.UpdateUser(1, 5, user.AdminUpdateUserInput{Role: &role, IsVerified: &verified})
	assert.NoError(t, err)
	assert.Equal(t, user.RoleFunder, u.Role)
	assert.True(t, u.IsVerified)
}

func TestDeleteUser_SelfDeleteRejected(t *testing.T) {
	svc, _ := setupAdminServiceMocks(t)

	assert.ErrorIs(t, svc.DeleteUser(1, 1), ErrSelfUpdate)
}

func TestDeleteUser_Success(t *testing.T) {
	svc, m := setupAdminServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5}, nil)
	m.user.EXPECT().DeleteUser(uint(5)).Return(nil)

	assert.NoError(t, svc.DeleteUser(1, 5))
}
