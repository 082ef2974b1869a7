package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"comanda/internal/gateway"
	"comanda/internal/model"
	"comanda/internal/session"
)

// authService implements AuthService.
type authService struct {
	gw       gateway.Gateway
	sessions *session.Store
	logger   zerolog.Logger

	mu   sync.RWMutex
	user *model.User
}

// NewAuthService creates a new auth service.
func NewAuthService(gw gateway.Gateway, sessions *session.Store, logger zerolog.Logger) AuthService {
	return &authService{
		gw:       gw,
		sessions: sessions,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) Restore(ctx context.Context) (*model.User, error) {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	s.attachToken(sess.Token)
	s.setUser(&sess.User)
	s.logger.Info().Str("user", sess.User.Email).Msg("session restored")
	return s.CurrentUser(), nil
}

func (s *authService) Login(ctx context.Context, idToken string, profile GoogleProfile) (*model.User, error) {
	if idToken == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Google ID token is required")
	}

	result, err := s.gw.AuthenticateWithGoogle(ctx, idToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("gateway authentication failed")
		return nil, err
	}

	user := model.User{
		ID:      profile.ID,
		Email:   result.Email,
		Name:    profile.Name,
		Role:    result.Role,
		Picture: profile.Picture,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Name == "" {
		user.Name = result.Email
	}

	s.attachToken(result.Token)
	if err := s.sessions.Save(ctx, model.Session{Token: result.Token, User: user}); err != nil {
		// The login itself succeeded; losing persistence only costs a
		// re-login after restart.
		s.logger.Warn().Err(err).Msg("failed to persist session")
	}

	s.setUser(&user)
	s.logger.Info().Str("user", user.Email).Str("role", string(user.Role)).Msg("logged in")
	return s.CurrentUser(), nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.attachToken("")
	s.setUser(nil)
	s.logger.Info().Msg("logged out")
	return nil
}

func (s *authService) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *authService) setUser(u *model.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// attachToken hands the JWT to the gateway client when it supports one.
// Mock gateways in tests may not.
func (s *authService) attachToken(token string) {
	if setter, ok := s.gw.(gateway.TokenSetter); ok {
		setter.SetToken(token)
	}
}
