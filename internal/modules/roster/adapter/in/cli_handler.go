package in

import (
	"context"

	"turma/internal/modules/roster/dto"
	rosterin "turma/internal/modules/roster/port/in"
)

type CLIHandler struct {
	usecase rosterin.Usecase
}

func NewCLIHandler(usecase rosterin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ParticipantOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Create(ctx context.Context, nome, idade, nota1, nota2 string) (dto.ParticipantOutput, error) {
	return h.usecase.Create(ctx, dto.ParticipantInput{
		Nome:                 nome,
		Idade:                idade,
		NotaPrimeiroSemestre: nota1,
		NotaSegundoSemestre:  nota2,
	})
}

func (h CLIHandler) Update(ctx context.Context, id int64, nome, idade, nota1, nota2 string) (dto.ParticipantOutput, error) {
	return h.usecase.Update(ctx, id, dto.ParticipantInput{
		Nome:                 nome,
		Idade:                idade,
		NotaPrimeiroSemestre: nota1,
		NotaSegundoSemestre:  nota2,
	})
}

func (h CLIHandler) Remove(ctx context.Context, id int64) error {
	return h.usecase.Remove(ctx, id)
}
