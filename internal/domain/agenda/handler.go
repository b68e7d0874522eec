package agenda

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/servicos"
	"petshop-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/agendamentos", func(ar chi.Router) {
		ar.Get("/", listAgendamentosHandler(svc))
		ar.Post("/", createAgendamentoHandler(svc))
		ar.Get("/disponibilidade", disponibilidadeHandler(svc))
		ar.Get("/{agendamentoID}", getAgendamentoHandler(svc))
		ar.Put("/{agendamentoID}", updateAgendamentoHandler(svc))
		ar.Delete("/{agendamentoID}", deleteAgendamentoHandler(svc))
	})
}

type createAgendamentoRequest struct {
	DataHora  string `json:"dataHora"` // RFC3339
	PetID     int64  `json:"petId"`
	ServicoID int64  `json:"servicoId"`
	Status    string `json:"status"`
}

type updateAgendamentoRequest struct {
	// Ponteiros para update parcial: nil = não tocar.
	DataHora  *string `json:"dataHora"`
	PetID     *int64  `json:"petId"`
	ServicoID *int64  `json:"servicoId"`
	Status    *string `json:"status"`
}

type agendamentoResponse struct {
	ID        int64       `json:"id"`
	DataHora  string      `json:"dataHora"`
	PetID     int64       `json:"petId"`
	ServicoID int64       `json:"servicoId"`
	Status    string      `json:"status"`
	Pet       *petRef     `json:"pet,omitempty"`
	Servico   *servicoRef `json:"servico,omitempty"`
}

type petRef struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Raca  string `json:"raca"`
	Dono  string `json:"dono"`
	Idade *int   `json:"idade,omitempty"`
}

type servicoRef struct {
	ID    int64   `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

type horarioResponse struct {
	Hora          string `json:"hora"`
	DataHora      string `json:"dataHora"`
	Ocupado       bool   `json:"ocupado"`
	AgendamentoID int64  `json:"agendamentoId,omitempty"`
}

func createAgendamentoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAgendamentoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		dataHora, err := time.Parse(time.RFC3339, req.DataHora)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "dataHora inválida, use o formato ISO-8601")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			DataHora:  dataHora,
			PetID:     req.PetID,
			ServicoID: req.ServicoID,
			Status:    req.Status,
		})
		if err != nil {
			writeAgendaError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAgendamentoResponse(a))
	}
}

func listAgendamentosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeAgendaError(w, err)
			return
		}

		out := make([]agendamentoResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAgendamentoResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// GET /agendamentos/disponibilidade?data=YYYY-MM-DD
func disponibilidadeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dia, err := time.Parse("2006-01-02", r.URL.Query().Get("data"))
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "data inválida, use o formato YYYY-MM-DD")
			return
		}

		horarios, err := svc.DisponibilidadeDoDia(r.Context(), dia)
		if err != nil {
			writeAgendaError(w, err)
			return
		}

		out := make([]horarioResponse, 0, len(horarios))
		for _, h := range horarios {
			out = append(out, horarioResponse{
				Hora:          h.Hora,
				DataHora:      h.DataHora.Format(time.RFC3339),
				Ocupado:       h.Ocupado,
				AgendamentoID: h.AgendamentoID,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getAgendamentoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := agendamentoIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeAgendaError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAgendamentoResponse(a))
	}
}

func updateAgendamentoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := agendamentoIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		var req updateAgendamentoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		var dataHora *time.Time
		if req.DataHora != nil {
			t, err := time.Parse(time.RFC3339, *req.DataHora)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "dataHora inválida, use o formato ISO-8601")
				return
			}
			dataHora = &t
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			DataHora:  dataHora,
			PetID:     req.PetID,
			ServicoID: req.ServicoID,
			Status:    req.Status,
		})
		if err != nil {
			writeAgendaError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAgendamentoResponse(a))
	}
}

func deleteAgendamentoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := agendamentoIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeAgendaError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func agendamentoIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "agendamentoID"), 10, 64)
}

func toAgendamentoResponse(a Agendamento) agendamentoResponse {
	out := agendamentoResponse{
		ID:        a.ID,
		DataHora:  a.DataHora.Format(time.RFC3339),
		PetID:     a.PetID,
		ServicoID: a.ServicoID,
		Status:    a.Status,
	}
	if a.Pet != nil {
		out.Pet = &petRef{
			ID:    a.Pet.ID,
			Nome:  a.Pet.Nome,
			Raca:  a.Pet.Raca,
			Dono:  a.Pet.Dono,
			Idade: a.Pet.Idade,
		}
	}
	if a.Servico != nil {
		out.Servico = &servicoRef{
			ID:    a.Servico.ID,
			Nome:  a.Servico.Nome,
			Preco: a.Servico.Preco,
		}
	}
	return out
}

func writeAgendaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, pets.ErrNotFound), errors.Is(err, servicos.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrHorarioOcupado):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
