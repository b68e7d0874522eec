package vacinas

import "time"

// PetExcluido é o rótulo exibido quando a vacina ficou órfã
// (o pet dono do registro foi removido).
const PetExcluido = "Pet Excluído"

// Vacina é o registro de uma dose aplicada (ou prevista) para um pet.
// O vínculo com o pet é fraco: remover o pet não remove a vacina.
type Vacina struct {
	ID            int64
	PetID         int64 // 0 quando o vínculo foi desfeito
	NomeVacina    string
	DataAplicacao time.Time
	ProximaDose   *time.Time

	// PetNome é preenchido na leitura; PetExcluido quando o pet não existe mais.
	PetNome string
}
