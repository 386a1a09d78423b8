package service

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/crabbyteti/tambak-monitor/internal/domain"
	"github.com/crabbyteti/tambak-monitor/internal/repository"
)

// User-facing result messages. Wrong password and unknown email share one
// message so the response does not reveal which field was wrong.
const (
	msgLoginEmpty      = "Email dan password tidak boleh kosong"
	msgLoginInvalid    = "Email atau password salah"
	msgLoginOK         = "Login berhasil!"
	msgNameEmpty       = "Nama tidak boleh kosong"
	msgNameTooShort    = "Nama minimal 2 karakter"
	msgEmailEmpty      = "Email tidak boleh kosong"
	msgEmailInvalid    = "Format email tidak valid"
	msgPasswordEmpty   = "Password tidak boleh kosong"
	msgPasswordShort   = "Password minimal 6 karakter"
	msgEmailRegistered = "Email sudah terdaftar"
	msgSignUpOK        = "Pendaftaran berhasil! Silakan login"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService validates credentials and creates users. Failures are returned
// as AuthResult values; only the caller decides how to present them.
type AuthService struct {
	repos *repository.Repos
}

// SignUp validates the input, rejects duplicate emails and inserts the new
// user. Duplicate names are allowed; only email is unique.
func (s *AuthService) SignUp(name, email, password string) domain.AuthResult {
	if strings.TrimSpace(name) == "" {
		return domain.AuthFailure(msgNameEmpty)
	}
	if len([]rune(name)) < 2 {
		return domain.AuthFailure(msgNameTooShort)
	}
	if strings.TrimSpace(email) == "" {
		return domain.AuthFailure(msgEmailEmpty)
	}
	if !emailPattern.MatchString(email) {
		return domain.AuthFailure(msgEmailInvalid)
	}
	if strings.TrimSpace(password) == "" {
		return domain.AuthFailure(msgPasswordEmpty)
	}
	if len([]rune(password)) < 6 {
		return domain.AuthFailure(msgPasswordShort)
	}

	if s.EmailExists(email) {
		return domain.AuthFailure(msgEmailRegistered)
	}

	user, err := s.repos.InsertUser(name, email, HashPassword(password))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("signup insert failed")
		return domain.AuthFailure(fmt.Sprintf("Terjadi kesalahan: %v", err))
	}

	log.Info().Str("email", email).Msg("user registered")
	return domain.AuthSuccess(user, msgSignUpOK)
}

// LogIn looks up an active user by exact email and verifies the password.
// On success last_login is stamped best-effort in the background; a failed
// stamp never fails the login.
func (s *AuthService) LogIn(email, password string) domain.AuthResult {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return domain.AuthFailure(msgLoginEmpty)
	}

	user, err := s.repos.FindActiveUserByEmail(email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("email", email).Msg("login lookup failed")
			return domain.AuthFailure(fmt.Sprintf("Terjadi kesalahan: %v", err))
		}
		return domain.AuthFailure(msgLoginInvalid)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return domain.AuthFailure(msgLoginInvalid)
	}

	go func(id int) {
		if err := s.repos.TouchLastLogin(id); err != nil {
			log.Warn().Err(err).Int("user_id", id).Msg("last_login update failed")
		}
	}(user.ID)

	log.Info().Str("email", email).Msg("login ok")
	return domain.AuthSuccess(user, msgLoginOK)
}

// EmailExists returns false on any query error rather than propagating it.
// Known weakness: a store outage makes registration race past the pre-check,
// leaving the unique index on email as the only guard.
func (s *AuthService) EmailExists(email string) bool {
	n, err := s.repos.CountUsersByEmail(email)
	if err != nil {
		log.Warn().Err(err).Msg("email existence check failed")
		return false
	}
	return n > 0
}
