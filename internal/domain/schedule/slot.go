package schedule

import "time"

// Reason explica por que um slot não está disponível.
type Reason string

const (
	ReasonNone  Reason = ""
	ReasonPast  Reason = "past"
	ReasonBusy  Reason = "busy"
	ReasonBreak Reason = "break"
)

// ConflictPolicy controla como um slot candidato colide com agendamentos
// existentes. A primeira versão do app só comparava o horário exato de
// início; o padrão aqui é sobreposição de intervalos, que respeita a
// duração real do serviço.
type ConflictPolicy string

const (
	ConflictInterval   ConflictPolicy = "interval"
	ConflictExactStart ConflictPolicy = "exact_start"
)

type Slot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Bookable bool      `json:"bookable"`
	Reason   Reason    `json:"reason,omitempty"`
}

// Day é o resultado do cálculo de disponibilidade para uma data.
// Closed distingue "barbearia fechada" de "nenhum slot livre".
type Day struct {
	Closed bool   `json:"closed"`
	Slots  []Slot `json:"slots"`
}
