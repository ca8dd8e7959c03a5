package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/domain/entity"
	repo "github.com/adityawp/casaly/internal/domain/repository"
	"github.com/adityawp/casaly/pkg/helpers"
)

// AuthService implements registration and login. Tokens are stateless; there
// is no server-side session or revocation list.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Token pairs an issued bearer token with its absolute expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Register creates a user and issues a token. The email pre-check is a
// friendly fast path only; the unique index in the store is the authoritative
// duplicate signal and surfaces as Conflict even under concurrent registers.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, Token, error) {
	if existing, err := s.Users.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, Token{}, apperr.New(apperr.KindConflict, "email already registered")
	} else if err != nil && apperr.KindOf(err) != apperr.KindNotFound {
		return nil, Token{}, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, Token{}, err
	}

	u := &entity.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, Token{}, err
	}

	tok, err := s.issue(u)
	if err != nil {
		return nil, Token{}, err
	}
	return u, tok, nil
}

// Login validates email/password and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, Token, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, Token{}, apperr.New(apperr.KindUnauthorized, "wrong credentials")
		}
		return nil, Token{}, err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, Token{}, apperr.New(apperr.KindUnauthorized, "wrong credentials")
	}

	tok, err := s.issue(u)
	if err != nil {
		return nil, Token{}, err
	}
	return u, tok, nil
}

func (s *AuthService) issue(u *entity.User) (Token, error) {
	val, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return Token{}, err
	}
	return Token{Value: val, ExpiresAt: exp}, nil
}
