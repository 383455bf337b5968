package serviceImp

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	repo "greengreen/pkg/auth/repository"
	"greengreen/pkg/auth/service"
)

const minPasswordLen = 8

type authSvc struct {
	r      repo.UserRepository
	secret []byte
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(r repo.UserRepository, secret string, ttl time.Duration, log *zap.Logger) service.AuthService {
	return &authSvc{r: r, secret: []byte(secret), ttl: ttl, log: log, now: time.Now}
}

func (s *authSvc) Signup(email, password string) (*entities.User, string, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", fmt.Errorf("email: %w", apperr.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, "", fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, apperr.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	now := s.now()
	u := &entities.User{UserID: uuid.NewString(), Email: email, PasswordHash: string(hash), LastLoginAt: &now}
	if err := s.r.Create(u); err != nil {
		return nil, "", err
	}
	tok, err := s.issue(u.UserID)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("user signed up", zap.String("op", "auth.signup"), zap.String("uid", u.UserID))
	return u, tok, nil
}

func (s *authSvc) Login(email, password string) (*entities.User, string, error) {
	u, err := s.r.FindByEmail(normalizeEmail(email))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, "", apperr.ErrBadCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.log.Info("login rejected", zap.String("op", "auth.login"), zap.String("uid", u.UserID))
		return nil, "", apperr.ErrBadCredentials
	}
	if err := s.r.TouchLogin(u.UserID, s.now()); err != nil {
		s.log.Warn("touch login", zap.String("op", "auth.login"), zap.Error(err))
	}
	tok, err := s.issue(u.UserID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (s *authSvc) ParseToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || claims.Subject == "" {
		return "", apperr.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *authSvc) issue(uid string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return tok, nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }
