package service

import (
	"context"
	"fmt"
	"strings"

	"turma/internal/modules/session/domain"
	sessionout "turma/internal/modules/session/port/out"
	apperrors "turma/internal/platform/errors"
)

type SessionService struct {
	gateway sessionout.AuthGateway
	store   sessionout.TokenStore
}

func NewSessionService(gateway sessionout.AuthGateway, store sessionout.TokenStore) *SessionService {
	return &SessionService{gateway: gateway, store: store}
}

// Login exchanges credentials for a token and persists it. On any failure
// nothing is stored and the previous session, if any, stays in place.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Session{}, fmt.Errorf("username and password are required")
	}
	token, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(token) == "" {
		return domain.Session{}, &apperrors.AuthError{Err: fmt.Errorf("empty token in login response")}
	}
	if err := s.store.Save(ctx, token); err != nil {
		return domain.Session{}, fmt.Errorf("persist token: %w", err)
	}
	return domain.Session{Token: token}, nil
}

// Current loads the persisted session. Authenticated calls fail fast on
// apperrors.ErrNotAuthenticated instead of sending a bogus header.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	token, err := s.store.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.Session{Token: token}
	if !session.Authenticated() {
		return domain.Session{}, apperrors.ErrNotAuthenticated
	}
	return session, nil
}
