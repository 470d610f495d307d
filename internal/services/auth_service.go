package services

import (
	"strings"

	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// ProvisionDefaultAdmin creates the default admin account if it does not
// exist yet. Returns true when a new account was created. Idempotent.
func (s *AuthService) ProvisionDefaultAdmin() (bool, error) {
	existing, err := s.userRepo.FindByUsername(DefaultAdminUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Username: DefaultAdminUsername,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate verifies a credential pair. Passwords are stored as
// bcrypt hashes and compared in constant time.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.FindByUsername(strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
