package agenda

import (
	"time"

	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/servicos"
)

// Agendamento é a reserva de um pet para um serviço em um instante único.
// Pet e Servico vêm preenchidos nas leituras (denormalização para exibição).
type Agendamento struct {
	ID        int64
	DataHora  time.Time
	PetID     int64
	ServicoID int64
	Status    string

	Pet     *pets.Pet
	Servico *servicos.Servico
}
