package services

import (
	"errors"
	"time"

	"github.com/canaville/resort-booking-backend/internal/config"
	"github.com/canaville/resort-booking-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed admin login attempt.
// The message deliberately does not say which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminAuthService handles admin authentication. There is a single admin
// account configured through the environment; its password is stored as a
// bcrypt hash.
type AdminAuthService struct {
	config     config.AdminConfig
	jwtService *jwt.Service
	logger     *logrus.Logger
}

// AdminLoginResponse carries the session token issued on successful login
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(cfg config.AdminConfig, jwtService *jwt.Service, logger *logrus.Logger) *AdminAuthService {
	return &AdminAuthService{
		config:     cfg,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies the admin credentials and issues a session token
func (s *AdminAuthService) Login(username, password string) (*AdminLoginResponse, error) {
	if username != s.config.Username {
		// Burn a comparison anyway so both failure paths take similar time
		_ = bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(username)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate admin token")
		return nil, errors.New("failed to generate session token")
	}

	s.logger.WithField("username", username).Info("Admin logged in")
	return &AdminLoginResponse{
		Token:     token,
		ExpiresIn: int64(s.config.TokenExpiry / time.Second),
	}, nil
}
