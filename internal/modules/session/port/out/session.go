package out

import "context"

// AuthGateway exchanges credentials for a bearer token at the remote auth
// endpoint. Failures surface as *apperrors.AuthError.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenStore persists the bearer token across runs. Load returns
// apperrors.ErrNotAuthenticated when no token has been stored.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
