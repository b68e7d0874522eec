package agenda

import (
	"fmt"
	"time"
)

// Grade fixa de atendimento: 09:00 às 18:00, de meia em meia hora.
const (
	horaAbertura    = 9
	horaFechamento  = 18
	minutosPorSlot  = 30
	TotalDeHorarios = 19
)

// Horario é uma posição da grade diária com seu estado de ocupação.
type Horario struct {
	Hora          string    // "HH:MM"
	DataHora      time.Time // dia + hora do slot, UTC
	Ocupado       bool
	AgendamentoID int64 // 0 quando livre
}

// Disponibilidade calcula a grade do dia: para cada um dos 19 horários,
// marca Ocupado quando algum agendamento cai exatamente naquele minuto.
// Agendamentos fora da grade de meia hora não aparecem nem bloqueiam slot.
// Função pura: não altera as entradas; saída sempre com 19 posições em
// ordem crescente, independente da ordem dos agendamentos recebidos.
func Disponibilidade(dia time.Time, ags []Agendamento) []Horario {
	ano, mes, d := dia.UTC().Date()

	out := make([]Horario, 0, TotalDeHorarios)
	for h := horaAbertura; h <= horaFechamento; h++ {
		for m := 0; m < 60; m += minutosPorSlot {
			if h == horaFechamento && m > 0 {
				break
			}

			slot := time.Date(ano, mes, d, h, m, 0, 0, time.UTC)
			hr := Horario{
				Hora:     fmt.Sprintf("%02d:%02d", h, m),
				DataHora: slot,
			}

			for _, a := range ags {
				// Comparação com granularidade de minuto.
				if a.DataHora.UTC().Truncate(time.Minute).Equal(slot) {
					hr.Ocupado = true
					hr.AgendamentoID = a.ID
					break
				}
			}

			out = append(out, hr)
		}
	}
	return out
}
