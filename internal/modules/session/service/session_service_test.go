package service_test

import (
	"context"
	"errors"
	"testing"

	"turma/internal/modules/session/service"
	apperrors "turma/internal/platform/errors"
)

type fakeAuthGateway struct {
	token string
	err   error
}

func (g fakeAuthGateway) Login(context.Context, string, string) (string, error) {
	return g.token, g.err
}

type fakeTokenStore struct {
	saved   string
	hasSave bool
	loadErr error
}

func (s *fakeTokenStore) Save(_ context.Context, token string) error {
	s.saved = token
	s.hasSave = true
	return nil
}

func (s *fakeTokenStore) Load(context.Context) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	if !s.hasSave {
		return "", apperrors.ErrNotAuthenticated
	}
	return s.saved, nil
}

func (s *fakeTokenStore) Clear(context.Context) error {
	s.saved = ""
	s.hasSave = false
	return nil
}

func TestLoginStoresToken(t *testing.T) {
	t.Parallel()
	store := &fakeTokenStore{}
	svc := service.NewSessionService(fakeAuthGateway{token: "jwt-abc"}, store)

	session, err := svc.Login(context.Background(), "ana", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token != "jwt-abc" || store.saved != "jwt-abc" {
		t.Fatalf("token not stored: session=%q store=%q", session.Token, store.saved)
	}

	current, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.AuthorizationHeader() != "Bearer jwt-abc" {
		t.Fatalf("unexpected header %q", current.AuthorizationHeader())
	}
}

func TestLoginFailureStoresNothing(t *testing.T) {
	t.Parallel()
	store := &fakeTokenStore{}
	svc := service.NewSessionService(fakeAuthGateway{err: &apperrors.AuthError{Status: 401}}, store)

	_, err := svc.Login(context.Background(), "ana", "wrong")
	var authErr *apperrors.AuthError
	if !errors.As(err, &authErr) || authErr.Status != 401 {
		t.Fatalf("expected AuthError 401, got %v", err)
	}
	if store.hasSave {
		t.Fatalf("token should not be stored on failure")
	}
}

func TestLoginRejectsEmptyCredentialsAndEmptyToken(t *testing.T) {
	t.Parallel()
	store := &fakeTokenStore{}

	svc := service.NewSessionService(fakeAuthGateway{token: "x"}, store)
	if _, err := svc.Login(context.Background(), "", "secret"); err == nil {
		t.Fatalf("empty username should fail")
	}

	svc = service.NewSessionService(fakeAuthGateway{token: "  "}, store)
	_, err := svc.Login(context.Background(), "ana", "secret")
	var authErr *apperrors.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("blank token in response should be an AuthError, got %v", err)
	}
}

func TestCurrentWithoutSession(t *testing.T) {
	t.Parallel()
	svc := service.NewSessionService(fakeAuthGateway{}, &fakeTokenStore{})
	if _, err := svc.Current(context.Background()); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
