package domain

import (
	"strconv"
	"strings"
)

// Draft holds form values as typed by the user. Conversion failures surface
// as field errors shaped exactly like the server's validation map so the UI
// renders both the same way.
type Draft struct {
	ID                   int64 // zero for a new participant
	Nome                 string
	Idade                string
	NotaPrimeiroSemestre string
	NotaSegundoSemestre  string
}

func DraftFrom(p Participant) Draft {
	return Draft{
		ID:                   p.ID,
		Nome:                 p.Nome,
		Idade:                strconv.Itoa(p.Idade),
		NotaPrimeiroSemestre: strconv.FormatFloat(p.NotaPrimeiroSemestre, 'f', -1, 64),
		NotaSegundoSemestre:  strconv.FormatFloat(p.NotaSegundoSemestre, 'f', -1, 64),
	}
}

// Payload converts the draft to the wire shape. A non-nil error map means the
// draft is not sendable; keys are wire field names.
func (d Draft) Payload() (Payload, map[string]string) {
	fields := map[string]string{}

	nome := strings.TrimSpace(d.Nome)
	if nome == "" {
		fields["nome"] = "obrigatório"
	}
	idade, err := strconv.Atoi(strings.TrimSpace(d.Idade))
	if err != nil {
		fields["idade"] = "deve ser um número inteiro"
	}
	nota1, err := strconv.ParseFloat(strings.TrimSpace(d.NotaPrimeiroSemestre), 64)
	if err != nil {
		fields["notaPrimeiroSemestre"] = "deve ser um número"
	}
	nota2, err := strconv.ParseFloat(strings.TrimSpace(d.NotaSegundoSemestre), 64)
	if err != nil {
		fields["notaSegundoSemestre"] = "deve ser um número"
	}
	if len(fields) > 0 {
		return Payload{}, fields
	}
	return Payload{
		Nome:                 nome,
		Idade:                idade,
		NotaPrimeiroSemestre: nota1,
		NotaSegundoSemestre:  nota2,
	}, nil
}
