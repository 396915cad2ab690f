package in

import (
	"context"

	"turma/internal/modules/roster/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.ParticipantOutput, error)
	Create(ctx context.Context, input dto.ParticipantInput) (dto.ParticipantOutput, error)
	Update(ctx context.Context, id int64, input dto.ParticipantInput) (dto.ParticipantOutput, error)
	Remove(ctx context.Context, id int64) error
}
