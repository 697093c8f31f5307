package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/waste_complaint_system/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials возвращается при неверном логине или пароле.
// Какое именно поле не совпало, наружу не сообщается.
var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionStore определяет контракт для хранилища сессий администратора
type SessionStore interface {
	Create(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// AuthService определяет контракт для аутентификации администратора.
// Состояний ровно два: Anonymous и Authenticated. Login - единственный
// переход вперёд, Logout или истечение TTL сессии - единственный обратный.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Check(ctx context.Context, token string) (bool, error)
}

type authService struct {
	sessions SessionStore
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewAuthService(sessions SessionStore, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		sessions: sessions,
		logger:   logger,
		cfg:      cfg,
	}
}

// Login сверяет учётные данные с единственной парой администратора.
// Пароль сравнивается через bcrypt, имя - за константное время.
// При совпадении выдаёт непрозрачный токен сессии с TTL.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password))
	if !userOK || passErr != nil {
		log.Warn("Failed admin login attempt")
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.sessions.Create(ctx, token, s.cfg.SessionTTL); err != nil {
		log.WithError(err).Error("Failed to create session")
		return "", fmt.Errorf("service: could not create session: %w", err)
	}

	log.Info("Admin logged in successfully")
	return token, nil
}

// Logout безусловно очищает состояние сессии
func (s *authService) Logout(ctx context.Context, token string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
	})

	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		log.WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}

	log.Info("Admin logged out")
	return nil
}

// Check сообщает, действительна ли сессия с данным токеном
func (s *authService) Check(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	ok, err := s.sessions.Exists(ctx, token)
	if err != nil {
		return false, fmt.Errorf("service: could not check session: %w", err)
	}
	return ok, nil
}
