package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petshop-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Nome  string `json:"nome"`
	Raca  string `json:"raca"`
	Dono  string `json:"dono"`
	Idade *int   `json:"idade"`
}

type updatePetRequest struct {
	// Ponteiros para update parcial: nil = não tocar.
	Nome  *string `json:"nome"`
	Raca  *string `json:"raca"`
	Dono  *string `json:"dono"`
	Idade *int    `json:"idade"`
}

type petResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Raca  string `json:"raca"`
	Dono  string `json:"dono"`
	Idade *int   `json:"idade,omitempty"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Nome:  req.Nome,
			Raca:  req.Raca,
			Dono:  req.Dono,
			Idade: req.Idade,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writePetError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := petIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writePetError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := petIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Nome:  req.Nome,
			Raca:  req.Raca,
			Dono:  req.Dono,
			Idade: req.Idade,
		})
		if err != nil {
			writePetError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := petIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writePetError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func petIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:    p.ID,
		Nome:  p.Nome,
		Raca:  p.Raca,
		Dono:  p.Dono,
		Idade: p.Idade,
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrHasRecords):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
