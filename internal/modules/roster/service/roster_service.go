package service

import (
	"context"

	"turma/internal/modules/roster/domain"
	rosterout "turma/internal/modules/roster/port/out"
	apperrors "turma/internal/platform/errors"
)

// RosterService is the thin data-client layer over the remote collection.
// Drafts are converted to wire payloads here; a draft that does not parse
// fails with the same *ValidationError shape a server 400 produces, so no
// request is wasted on input the server would bounce anyway.
type RosterService struct {
	gateway rosterout.Gateway
}

func NewRosterService(gateway rosterout.Gateway) *RosterService {
	return &RosterService{gateway: gateway}
}

func (s *RosterService) List(ctx context.Context) ([]domain.Participant, error) {
	return s.gateway.List(ctx)
}

func (s *RosterService) Create(ctx context.Context, draft domain.Draft) (domain.Participant, error) {
	payload, fields := draft.Payload()
	if fields != nil {
		return domain.Participant{}, &apperrors.ValidationError{Fields: fields}
	}
	return s.gateway.Create(ctx, payload)
}

func (s *RosterService) Update(ctx context.Context, draft domain.Draft) (domain.Participant, error) {
	payload, fields := draft.Payload()
	if fields != nil {
		return domain.Participant{}, &apperrors.ValidationError{Fields: fields}
	}
	return s.gateway.Update(ctx, draft.ID, payload)
}

func (s *RosterService) Remove(ctx context.Context, id int64) error {
	return s.gateway.Delete(ctx, id)
}
