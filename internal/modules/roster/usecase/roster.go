package usecase

import (
	"context"

	"turma/internal/modules/roster/domain"
	"turma/internal/modules/roster/dto"
	rosterin "turma/internal/modules/roster/port/in"
	"turma/internal/modules/roster/service"
)

type Interactor struct {
	svc *service.RosterService
}

func NewInteractor(svc *service.RosterService) rosterin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.ParticipantOutput, error) {
	participants, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ParticipantOutput, 0, len(participants))
	for _, p := range participants {
		out = append(out, toOutput(p))
	}
	return out, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.ParticipantInput) (dto.ParticipantOutput, error) {
	created, err := i.svc.Create(ctx, toDraft(0, input))
	if err != nil {
		return dto.ParticipantOutput{}, err
	}
	return toOutput(created), nil
}

func (i *Interactor) Update(ctx context.Context, id int64, input dto.ParticipantInput) (dto.ParticipantOutput, error) {
	updated, err := i.svc.Update(ctx, toDraft(id, input))
	if err != nil {
		return dto.ParticipantOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Remove(ctx context.Context, id int64) error {
	return i.svc.Remove(ctx, id)
}

func toDraft(id int64, input dto.ParticipantInput) domain.Draft {
	return domain.Draft{
		ID:                   id,
		Nome:                 input.Nome,
		Idade:                input.Idade,
		NotaPrimeiroSemestre: input.NotaPrimeiroSemestre,
		NotaSegundoSemestre:  input.NotaSegundoSemestre,
	}
}

func toOutput(p domain.Participant) dto.ParticipantOutput {
	return dto.ParticipantOutput{
		ID:                   p.ID,
		Nome:                 p.Nome,
		Idade:                p.Idade,
		NotaPrimeiroSemestre: p.NotaPrimeiroSemestre,
		NotaSegundoSemestre:  p.NotaSegundoSemestre,
		MediaFinal:           p.MediaFinal,
	}
}
