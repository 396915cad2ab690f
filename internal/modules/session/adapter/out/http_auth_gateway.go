package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sessionout "turma/internal/modules/session/port/out"
	apperrors "turma/internal/platform/errors"
)

type HTTPAuthGateway struct {
	baseURL string
	http    *http.Client
}

func NewHTTPAuthGateway(baseURL string, timeout time.Duration) sessionout.AuthGateway {
	return &HTTPAuthGateway{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login posts credentials to /auth/login and returns the bearer token.
// Every failure mode collapses into *apperrors.AuthError; the status field
// lets callers tell bad credentials from an unreachable service.
func (g *HTTPAuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("marshal login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", &apperrors.AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &apperrors.AuthError{Status: resp.StatusCode}
	}
	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &apperrors.AuthError{Status: resp.StatusCode, Err: fmt.Errorf("decode login response: %w", err)}
	}
	return out.Token, nil
}
