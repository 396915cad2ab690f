package domain

import "strconv"

// Participant is the server-owned student record. The client holds a cached
// copy; MediaFinal is computed by the server and only displayed here.
type Participant struct {
	ID                   int64   `json:"id"`
	Nome                 string  `json:"nome"`
	Idade                int     `json:"idade"`
	NotaPrimeiroSemestre float64 `json:"notaPrimeiroSemestre"`
	NotaSegundoSemestre  float64 `json:"notaSegundoSemestre"`
	MediaFinal           float64 `json:"mediaFinal"`
}

// Payload is the client-sent shape for create and update calls. The server
// assigns ID and MediaFinal, so neither is part of the payload.
type Payload struct {
	Nome                 string  `json:"nome"`
	Idade                int     `json:"idade"`
	NotaPrimeiroSemestre float64 `json:"notaPrimeiroSemestre"`
	NotaSegundoSemestre  float64 `json:"notaSegundoSemestre"`
}

// IDText is the decimal rendering used by the id substring search.
func (p Participant) IDText() string {
	return strconv.FormatInt(p.ID, 10)
}
