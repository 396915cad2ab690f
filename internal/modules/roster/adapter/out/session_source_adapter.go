package out

import (
	"context"

	rosterout "turma/internal/modules/roster/port/out"
	sessiondomain "turma/internal/modules/session/domain"
	sessionin "turma/internal/modules/session/port/in"
)

// SessionSourceAdapter bridges the session module into the roster gateway:
// each request reads the persisted token and renders a bearer header. An
// absent session propagates as ErrNotAuthenticated before any request leaves.
type SessionSourceAdapter struct {
	session sessionin.Usecase
}

func NewSessionSourceAdapter(session sessionin.Usecase) rosterout.SessionSource {
	return &SessionSourceAdapter{session: session}
}

func (a *SessionSourceAdapter) AuthHeader(ctx context.Context) (string, error) {
	current, err := a.session.Current(ctx)
	if err != nil {
		return "", err
	}
	return sessiondomain.Session{Token: current.Token}.AuthorizationHeader(), nil
}
