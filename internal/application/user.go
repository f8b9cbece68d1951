package application

import (
	"errors"
	"time"

	"github.com/ngobridge/platform-go/internal/api/middleware"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Register creates an account for one of the self-service roles. Funders
// and providers are verified immediately; NGO admins wait for the platform
// admin.
func (s *UserService) Register(input user.RegisterInput) error {
	if !user.ValidSelfRegisterRole(input.Role) {
		return ErrInvalidRole
	}

	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := user.Role(input.Role)
	u := &user.User{
		Email:      input.Email,
		Password:   string(hashed),
		Role:       role,
		IsVerified: role.AutoVerified(),
	}
	return s.Repos.User.SaveUser(u)
}

// Login checks credentials and issues a signed token.
func (s *UserService) Login(email, password string) (user.User, string, error) {
	u, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.ID, u.Email, string(u.Role), tokenLifetime)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}
