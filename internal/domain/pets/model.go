package pets

// Pet representa um animal cadastrado por um cliente do pet shop.
// A dupla (nome, dono) é única sem diferenciar maiúsculas; a regra vive
// no Service, não no schema.
type Pet struct {
	ID    int64
	Nome  string
	Raca  string
	Dono  string
	Idade *int
}
