package vacinas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"petshop-api/internal/domain/pets"
	"petshop-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vacinas", func(vr chi.Router) {
		vr.Get("/", listVacinasHandler(svc))
		vr.Post("/", createVacinaHandler(svc))
		vr.Get("/{vacinaID}", getVacinaHandler(svc))
		vr.Put("/{vacinaID}", updateVacinaHandler(svc))
		vr.Delete("/{vacinaID}", deleteVacinaHandler(svc))
	})
}

type createVacinaRequest struct {
	PetID         int64  `json:"petId"`
	NomeVacina    string `json:"nomeVacina"`
	DataAplicacao string `json:"dataAplicacao"` // YYYY-MM-DD
	ProximaDose   string `json:"proximaDose"`   // YYYY-MM-DD, opcional
}

type updateVacinaRequest struct {
	PetID         *int64  `json:"petId"`
	NomeVacina    *string `json:"nomeVacina"`
	DataAplicacao *string `json:"dataAplicacao"`
	ProximaDose   *string `json:"proximaDose"`
}

type vacinaResponse struct {
	ID            int64  `json:"id"`
	PetID         int64  `json:"petId"`
	NomeVacina    string `json:"nomeVacina"`
	DataAplicacao string `json:"dataAplicacao"`
	ProximaDose   string `json:"proximaDose,omitempty"`
	PetNome       string `json:"petNome"`
}

func createVacinaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVacinaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if strings.TrimSpace(req.DataAplicacao) == "" {
			httpx.WriteError(w, http.StatusBadRequest, "Campos obrigatórios: petId, nomeVacina, dataAplicacao")
			return
		}
		dataAplicacao, err := time.Parse("2006-01-02", req.DataAplicacao)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "dataAplicacao inválida, use o formato YYYY-MM-DD")
			return
		}

		var proximaDose *time.Time
		if strings.TrimSpace(req.ProximaDose) != "" {
			t, err := time.Parse("2006-01-02", req.ProximaDose)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "proximaDose inválida, use o formato YYYY-MM-DD")
				return
			}
			proximaDose = &t
		}

		v, err := svc.Create(r.Context(), CreateInput{
			PetID:         req.PetID,
			NomeVacina:    req.NomeVacina,
			DataAplicacao: dataAplicacao,
			ProximaDose:   proximaDose,
		})
		if err != nil {
			writeVacinaError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toVacinaResponse(v))
	}
}

func listVacinasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var petID *int64
		if raw := r.URL.Query().Get("petId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "petId inválido")
				return
			}
			petID = &id
		}

		items, err := svc.List(r.Context(), petID)
		if err != nil {
			writeVacinaError(w, err)
			return
		}

		out := make([]vacinaResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVacinaResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getVacinaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacinaIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeVacinaError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVacinaResponse(v))
	}
}

func updateVacinaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacinaIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		var req updateVacinaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		in := UpdateInput{PetID: req.PetID, NomeVacina: req.NomeVacina}
		if req.DataAplicacao != nil {
			t, err := time.Parse("2006-01-02", *req.DataAplicacao)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "dataAplicacao inválida, use o formato YYYY-MM-DD")
				return
			}
			in.DataAplicacao = &t
		}
		if req.ProximaDose != nil {
			t, err := time.Parse("2006-01-02", *req.ProximaDose)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "proximaDose inválida, use o formato YYYY-MM-DD")
				return
			}
			in.ProximaDose = &t
		}

		v, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeVacinaError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVacinaResponse(v))
	}
}

func deleteVacinaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacinaIDParam(r)
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeVacinaError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func vacinaIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "vacinaID"), 10, 64)
}

func toVacinaResponse(v Vacina) vacinaResponse {
	out := vacinaResponse{
		ID:            v.ID,
		PetID:         v.PetID,
		NomeVacina:    v.NomeVacina,
		DataAplicacao: v.DataAplicacao.Format("2006-01-02"),
		PetNome:       v.PetNome,
	}
	if v.ProximaDose != nil {
		out.ProximaDose = v.ProximaDose.Format("2006-01-02")
	}
	return out
}

func writeVacinaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, pets.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
