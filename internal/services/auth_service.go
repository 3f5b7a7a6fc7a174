package services

import (
	"database/sql"
	"errors"

	"ajir/internal/domain"
	"ajir/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrEmailNotFound = errors.New("email not found")
	ErrBadPassword   = errors.New("incorrect password")
	// Admin login collapses both failure modes so the response doesn't leak
	// which field was wrong.
	ErrBadCreds = errors.New("invalid credentials")
)

type AuthService struct {
	Users  *repos.UserRepo
	Admins *repos.AdminRepo
}

// Signup stores the password as a bcrypt hash; plaintext never hits the
// database. Email is expected trimmed and lower-cased by the caller.
func (s *AuthService) Signup(name, email, password string) (string, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	u := &domain.User{ID: uuid.NewString(), Name: name, Email: email, Hash: string(h)}
	if err := s.Users.Create(u); err != nil {
		return "", err
	}
	return u.ID, nil
}

func (s *AuthService) Login(email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadPassword
	}
	return u, nil
}

func (s *AuthService) AdminLogin(username, password string) error {
	a, err := s.Admins.ByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBadCreds
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(password)) != nil {
		return ErrBadCreds
	}
	return nil
}
