// Package sessionservice logs users in and out and authenticates their access tokens.
package sessionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/configpkg"
	"github.com/go-petr/devbank/pkg/passpkg"
	"github.com/go-petr/devbank/pkg/tokenpkg"
)

// UserRepo provides users by login name.
//
//go:generate mockgen -source service.go -destination service_mock.go -package sessionservice
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// Repo provides session persistence.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateSessionParams) (domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Block(ctx context.Context, id uuid.UUID) error
}

// Service facilitates session service layer logic.
type Service struct {
	users      UserRepo
	repo       Repo
	config     configpkg.Config
	tokenMaker tokenpkg.Maker
}

// New returns session service.
func New(users UserRepo, repo Repo, config configpkg.Config, tokenMaker tokenpkg.Maker) *Service {
	return &Service{
		users:      users,
		repo:       repo,
		config:     config,
		tokenMaker: tokenMaker,
	}
}

// Login checks the credentials, issues an access token and records the session together with
// the login. It returns the token, its expiry and the logged in user.
func (s *Service) Login(ctx context.Context, username, password, userAgent, clientIP string) (string, time.Time, domain.User, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, domain.User{}, err
	}

	if err := passpkg.Check(password, user.HashedPassword); err != nil {
		return "", time.Time{}, domain.User{}, domain.ErrWrongPassword
	}

	role, err := domain.ParseRole(string(user.Role))
	if err != nil {
		l.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login with unknown role")
		return "", time.Time{}, domain.User{}, err
	}

	accessToken, payload, err := s.tokenMaker.CreateToken(user.ID, string(role), s.config.AccessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return "", time.Time{}, domain.User{}, err
	}

	_, err = s.repo.Create(ctx, domain.CreateSessionParams{
		ID:        payload.ID,
		UserID:    user.ID,
		Role:      role,
		UserAgent: userAgent,
		ClientIP:  clientIP,
		ExpiresAt: payload.ExpiredAt,
	})
	if err != nil {
		return "", time.Time{}, domain.User{}, err
	}

	user.Role = role
	user.HashedPassword = ""

	return accessToken, payload.ExpiredAt, user, nil
}

// Logout blocks the session of the principal.
func (s *Service) Logout(ctx context.Context, principal domain.Principal) error {
	return s.repo.Block(ctx, principal.SessionID)
}

// Authenticate verifies the access token and checks that its session is still usable.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (domain.Principal, error) {
	payload, err := s.tokenMaker.VerifyToken(accessToken)
	if err != nil {
		return domain.Principal{}, err
	}

	role, err := domain.ParseRole(payload.Role)
	if err != nil {
		return domain.Principal{}, tokenpkg.ErrInvalidToken
	}

	sess, err := s.repo.Get(ctx, payload.ID)
	if err != nil {
		return domain.Principal{}, err
	}

	switch {
	case sess.IsBlocked:
		return domain.Principal{}, domain.ErrBlockedSession
	case sess.UserID != payload.UserID || sess.Role != role:
		return domain.Principal{}, tokenpkg.ErrInvalidToken
	case time.Now().After(sess.ExpiresAt):
		return domain.Principal{}, tokenpkg.ErrExpiredToken
	}

	return domain.Principal{SessionID: sess.ID, UserID: sess.UserID, Role: role}, nil
}

