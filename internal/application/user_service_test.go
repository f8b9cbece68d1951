package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ngobridge/platform-go/internal/api/middleware"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	return NewUserService(repos), mockUser
}

// --------------------- Register ---------------------

func TestRegister_NgoStartsUnverified(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ngo@hope.org").
		Return(user.User{}, gorm.ErrRecordNotFound)

	var saved *user.User
	mockUser.EXPECT().SaveUser(gomock.Any()).
		DoAndReturn(func(u *user.User) error {
			saved = u
			return nil
		})

	err := svc.Register(user.RegisterInput{
		Email:    "ngo@hope.org",
		Password: "123456",
		Role:     "ngo_admin",
	})
	assert.NoError(t, err)
	assert.Equal(t, user.RoleNgoAdmin, saved.Role)
	assert.False(t, saved.IsVerified)
	// password must be stored hashed
	assert.NotEqual(t, "123456", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("123456")))
}

func TestRegister_FunderAutoVerified(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("f@aqua.org").
		Return(user.User{}, gorm.ErrRecordNotFound)

	var saved *user.User
	mockUser.EXPECT().SaveUser(gomock.Any()).
		DoAndReturn(func(u *user.User) error {
			saved = u
			return nil
		})

	err := svc.Register(user.RegisterInput{Email: "f@aqua.org", Password: "123456", Role: "funder"})
	assert.NoError(t, err)
	assert.True(t, saved.IsVerified)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("taken@x.org").
		Return(user.User{ID: 1}, nil)

	err := svc.Register(user.RegisterInput{Email: "taken@x.org", Password: "123456", Role: "funder"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	err := svc.Register(user.RegisterInput{Email: "a@x.org", Password: "123456", Role: "platform_admin"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	err = svc.Register(user.RegisterInput{Email: "a@x.org", Password: "123456", Role: "superuser"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

// --------------------- Login ---------------------

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 5, Email: "ngo@hope.org", Password: string(hashed), Role: user.RoleNgoAdmin}
	mockUser.EXPECT().GetUserByEmail("ngo@hope.org").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, email, role string, exp time.Duration) (string, error) {
		assert.Equal(t, uint(5), uid)
		assert.Equal(t, "ngo_admin", role)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("ngo@hope.org", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "ngo@hope.org", u.Email)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByEmail("ngo@hope.org").
		Return(user.User{ID: 5, Password: string(hashed)}, nil)

	_, token, err := svc.Login("ngo@hope.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("nobody@x.org").
		Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@x.org", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
