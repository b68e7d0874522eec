package servicos

// Servico é uma oferta precificada do pet shop (banho, tosa, consulta...),
// referenciada pelos agendamentos.
type Servico struct {
	ID    int64
	Nome  string
	Preco float64
}
