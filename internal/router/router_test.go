package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"petshop-api/internal/platform/logger"
	"petshop-api/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Logger: logger.New(logger.Options{Level: logger.Error}),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_AgendamentoRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})
	servicoID := createServico(t, ts.URL, map[string]any{"nome": "Banho", "preco": 40})

	// 1) Cria agendamento
	st, body := doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T14:00:00Z",
		"petId":     petID,
		"servicoId": servicoID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create agendamento, got %d body=%s", st, string(body))
	}

	// 2) Lista traz exatamente um, com pet e serviço juntados
	st, body = doReq(t, ts.URL, "GET", "/agendamentos", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
	}

	var list []struct {
		DataHora string `json:"dataHora"`
		Pet      *struct {
			ID int64 `json:"id"`
		} `json:"pet"`
		Servico *struct {
			ID int64 `json:"id"`
		} `json:"servico"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("unmarshal list: %v body=%s", err, string(body))
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 agendamento, got %d", len(list))
	}
	if list[0].DataHora != "2025-11-13T14:00:00Z" {
		t.Errorf("expected dataHora preserved, got %s", list[0].DataHora)
	}
	if list[0].Pet == nil || list[0].Pet.ID != petID {
		t.Errorf("expected joined pet %d, got %+v", petID, list[0].Pet)
	}
	if list[0].Servico == nil || list[0].Servico.ID != servicoID {
		t.Errorf("expected joined servico %d, got %+v", servicoID, list[0].Servico)
	}

	// 3) Mesmo horário de novo => 409
	st, body = doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T14:00:00Z",
		"petId":     petID,
		"servicoId": servicoID,
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 for taken slot, got %d body=%s", st, string(body))
	}
}

func TestHTTP_AgendamentoUpdateParcial(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})
	servicoID := createServico(t, ts.URL, map[string]any{"nome": "Banho"})

	st, body := doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T14:00:00Z",
		"petId":     petID,
		"servicoId": servicoID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}
	var created struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &created)

	// PUT só com status: nada mais muda
	st, body = doReq(t, ts.URL, "PUT", "/agendamentos/"+itoa(created.ID), map[string]any{
		"status": "done",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 partial update, got %d body=%s", st, string(body))
	}

	var updated struct {
		DataHora  string `json:"dataHora"`
		PetID     int64  `json:"petId"`
		ServicoID int64  `json:"servicoId"`
		Status    string `json:"status"`
	}
	_ = json.Unmarshal(body, &updated)
	if updated.Status != "done" {
		t.Errorf("expected status done, got %q", updated.Status)
	}
	if updated.DataHora != "2025-11-13T14:00:00Z" {
		t.Errorf("dataHora must be untouched, got %s", updated.DataHora)
	}
	if updated.PetID != petID || updated.ServicoID != servicoID {
		t.Errorf("pet/servico must be untouched: %+v", updated)
	}
}

func TestHTTP_PetDuplicado(t *testing.T) {
	ts := newTestServer(t)

	createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})

	st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{"nome": "REX", "dono": "ana"})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate pet, got %d body=%s", st, string(body))
	}

	// mesmo nome, outro dono: ok
	st, body = doReq(t, ts.URL, "POST", "/pets", map[string]any{"nome": "Rex", "dono": "Bruno"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 for another owner, got %d body=%s", st, string(body))
	}
}

func TestHTTP_ServicoEmUsoNaoExclui(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})
	servicoID := createServico(t, ts.URL, map[string]any{"nome": "Banho"})

	st, body := doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T10:00:00Z",
		"petId":     petID,
		"servicoId": servicoID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "DELETE", "/servicos/"+itoa(servicoID), nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 deleting servico in use, got %d body=%s", st, string(body))
	}

	// serviço sem referências sai normalmente
	livreID := createServico(t, ts.URL, map[string]any{"nome": "Tosa"})
	st, _ = doReq(t, ts.URL, "DELETE", "/servicos/"+itoa(livreID), nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 deleting free servico, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/servicos", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list servicos, got %d", st)
	}
	var servicosList []struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &servicosList)
	for _, s := range servicosList {
		if s.ID == livreID {
			t.Errorf("deleted servico %d still listed", livreID)
		}
	}
}

func TestHTTP_PetComVacinaViraOrfa(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})

	st, body := doReq(t, ts.URL, "POST", "/vacinas", map[string]any{
		"petId":         petID,
		"nomeVacina":    "Antirrábica",
		"dataAplicacao": "2025-11-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vacina, got %d body=%s", st, string(body))
	}

	// pet só com vacinas pode ser excluído
	st, body = doReq(t, ts.URL, "DELETE", "/pets/"+itoa(petID), nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 deleting pet with only vacinas, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/vacinas", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list vacinas, got %d", st)
	}
	var vacinasList []struct {
		PetNome string `json:"petNome"`
	}
	_ = json.Unmarshal(body, &vacinasList)
	if len(vacinasList) != 1 {
		t.Fatalf("expected 1 vacina after pet delete, got %d", len(vacinasList))
	}
	if vacinasList[0].PetNome != "Pet Excluído" {
		t.Errorf("expected sentinel Pet Excluído, got %q", vacinasList[0].PetNome)
	}
}

func TestHTTP_PetComAgendamentoNaoExclui(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})
	servicoID := createServico(t, ts.URL, map[string]any{"nome": "Banho"})

	st, body := doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T11:30:00Z",
		"petId":     petID,
		"servicoId": servicoID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "DELETE", "/pets/"+itoa(petID), nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 deleting pet with agendamento, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Disponibilidade(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"nome": "Rex", "dono": "Ana"})
	servicoID := createServico(t, ts.URL, map[string]any{"nome": "Banho"})

	st, body := doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T09:30:00Z",
		"petId":     petID,
		"servicoId": servicoID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/agendamentos/disponibilidade?data=2025-11-13", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 disponibilidade, got %d body=%s", st, string(body))
	}

	var horarios []struct {
		Hora    string `json:"hora"`
		Ocupado bool   `json:"ocupado"`
	}
	if err := json.Unmarshal(body, &horarios); err != nil {
		t.Fatalf("unmarshal horarios: %v", err)
	}
	if len(horarios) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(horarios))
	}
	for _, h := range horarios {
		if h.Hora == "09:30" && !h.Ocupado {
			t.Errorf("09:30 should be occupied")
		}
		if h.Hora != "09:30" && h.Ocupado {
			t.Errorf("slot %s should be free", h.Hora)
		}
	}

	// data faltando => 400
	st, _ = doReq(t, ts.URL, "GET", "/agendamentos/disponibilidade", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without data, got %d", st)
	}
}

func TestHTTP_ReferenciasInexistentes(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/agendamentos", map[string]any{
		"dataHora":  "2025-11-13T09:00:00Z",
		"petId":     123,
		"servicoId": 456,
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for missing pet, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/pets/999", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 get missing pet, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "DELETE", "/agendamentos/999", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 delete missing agendamento, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

func createPet(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createServico(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/servicos", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create servico, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create servico: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
