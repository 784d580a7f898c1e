package service

import (
	"crypto/hmac"
	"errors"
	"strings"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordNotConfigured is returned when no gate password is set.
	ErrPasswordNotConfigured = errors.New("password not configured")
	// ErrWrongPassword is returned when the submitted password does not match.
	ErrWrongPassword = errors.New("wrong password")
)

type AuthS struct {
	password string
	log      *zap.Logger
}

func NewAuthService(cfg config.AuthConfig, log *zap.Logger) *AuthS {
	return &AuthS{
		password: cfg.Password,
		log:      log,
	}
}

// VerifyPassword checks a submitted password against the configured one.
// A configured value starting with the bcrypt "$2" prefix is treated as a
// hash, anything else as the clear-text password.
func (a *AuthS) VerifyPassword(candidate string) error {
	if a.password == "" {
		a.log.Error("gate password is not configured")
		return ErrPasswordNotConfigured
	}

	if strings.HasPrefix(a.password, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(a.password), []byte(candidate)); err != nil {
			return ErrWrongPassword
		}
		return nil
	}

	if !hmac.Equal([]byte(candidate), []byte(a.password)) {
		return ErrWrongPassword
	}
	return nil
}
