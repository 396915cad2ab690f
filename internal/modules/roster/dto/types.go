package dto

type ParticipantInput struct {
	Nome                 string
	Idade                string
	NotaPrimeiroSemestre string
	NotaSegundoSemestre  string
}

type ParticipantOutput struct {
	ID                   int64
	Nome                 string
	Idade                int
	NotaPrimeiroSemestre float64
	NotaSegundoSemestre  float64
	MediaFinal           float64
}
