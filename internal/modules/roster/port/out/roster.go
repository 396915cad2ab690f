package out

import (
	"context"

	"turma/internal/modules/roster/domain"
)

// Gateway is the four-call CRUD surface of the remote participant collection.
// Every call attaches the current bearer token; with no stored session the
// call fails fast with apperrors.ErrNotAuthenticated and no request is sent.
// 400 responses on Create and Update surface as *apperrors.ValidationError,
// any other non-2xx as *apperrors.RequestError.
type Gateway interface {
	List(ctx context.Context) ([]domain.Participant, error)
	Create(ctx context.Context, payload domain.Payload) (domain.Participant, error)
	Update(ctx context.Context, id int64, payload domain.Payload) (domain.Participant, error)
	Delete(ctx context.Context, id int64) error
}

// SessionSource supplies the Authorization header value for authenticated
// calls. Implementations return apperrors.ErrNotAuthenticated when no session
// is stored.
type SessionSource interface {
	AuthHeader(ctx context.Context) (string, error)
}
