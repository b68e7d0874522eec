package httpx

import (
	"encoding/json"
	"net/http"
)

// Helpers de resposta compartilhados pelos handlers dos módulos.
// Começaram duplicados por módulo; com quatro módulos repetindo o mesmo
// par de funções, viraram helper comum.

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde no formato {"error": "<mensagem>"} que o front espera.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
