package servicos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petshop-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/servicos", func(sr chi.Router) {
		sr.Get("/", listServicosHandler(svc))
		sr.Post("/", createServicoHandler(svc))
		sr.Get("/{servicoID}", getServicoHandler(svc))
		sr.Put("/{servicoID}", updateServicoHandler(svc))
		sr.Delete("/{servicoID}", deleteServicoHandler(svc))
	})
}

type createServicoRequest struct {
	Nome  string   `json:"nome"`
	Preco *float64 `json:"preco"`
}

type updateServicoRequest struct {
	Nome  *string  `json:"nome"`
	Preco *float64 `json:"preco"`
}

type servicoResponse struct {
	ID    int64   `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

func createServicoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createServicoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		sv, err := svc.Create(r.Context(), CreateInput{Nome: req.Nome, Preco: req.Preco})
		if err != nil {
			writeServicoError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toServicoResponse(sv))
	}
}

func listServicosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServicoError(w, err)
			return
		}

		out := make([]servicoResponse, 0, len(items))
		for _, sv := range items {
			out = append(out, toServicoResponse(sv))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getServicoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := servicoIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		sv, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServicoError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toServicoResponse(sv))
	}
}

func updateServicoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := servicoIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		var req updateServicoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		sv, err := svc.Update(r.Context(), id, UpdateInput{Nome: req.Nome, Preco: req.Preco})
		if err != nil {
			writeServicoError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toServicoResponse(sv))
	}
}

func deleteServicoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := servicoIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServicoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func servicoIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "servicoID"), 10, 64)
}

func toServicoResponse(s Servico) servicoResponse {
	return servicoResponse{
		ID:    s.ID,
		Nome:  s.Nome,
		Preco: s.Preco,
	}
}

func writeServicoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInUse):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
