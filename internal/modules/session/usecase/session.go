package usecase

import (
	"context"

	"turma/internal/modules/session/dto"
	sessionin "turma/internal/modules/session/port/in"
	"turma/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	session, err := i.svc.Login(ctx, input.Username, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Token: session.Token}, nil
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Token: session.Token}, nil
}
