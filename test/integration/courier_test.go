package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"meu_delivery/internal/config"
	"meu_delivery/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistrationFlow - check availability, register, then the same data is taken
func TestRegistrationFlow(t *testing.T) {
	t.Parallel()

	// 1. Arrange
	ts := helpers.NewTestServer(t)
	body := registerBody()
	check := map[string]string{"email": body["email"].(string), "celular": body["celular"].(string)}

	// 2. Act: data still free
	res, resBody := ts.SendRequest(t, http.MethodPost, "/verificar", "", check)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, resBody, "Dados disponíveis.")

	// 3. Act: register
	res, resBody = ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)
	var created createdBody
	helpers.DecodeJSON(t, resBody, &created)
	assert.Equal(t, "Entregador criado com sucesso", created.Message)

	// 4. Assert: the phone is reported before the email
	res, resBody = ts.SendRequest(t, http.MethodPost, "/verificar", "", check)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	var conflict errorBody
	helpers.DecodeJSON(t, resBody, &conflict)
	assert.Equal(t, "Celular já cadastrado.", conflict.Error)
	assert.Equal(t, "CONFLICT", conflict.Code)

	// 5. Assert: registering again hits the unique indexes
	res, resBody = ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "CPF/CNPJ já cadastrado.")
}

func TestVerify_EmailTaken(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	courier := helpers.CreateCourier(t, ts.DB)

	res, resBody := ts.SendRequest(t, http.MethodPost, "/verificar", "", map[string]string{
		"email":   courier.Email,
		"celular": "(41) 90000-0000",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var conflict errorBody
	helpers.DecodeJSON(t, resBody, &conflict)
	assert.Equal(t, "E-mail já cadastrado.", conflict.Error)
}

func TestVerify_NoFields(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, resBody := ts.SendRequest(t, http.MethodPost, "/verificar", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "Pelo menos um dos campos")
}

func TestRegister_MissingField(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	body := registerBody()
	delete(body, "chavePix")

	res, resBody := ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var missing errorBody
	helpers.DecodeJSON(t, resBody, &missing)
	assert.Equal(t, "Todos os campos são obrigatórios.", missing.Error)
	assert.Equal(t, "MISSING_FIELDS", missing.Code)
	assert.Contains(t, resBody, "chavePix")
}

func TestRegister_InvalidDocument(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	body := registerBody()
	body["cpfCnpj"] = "123"

	res, resBody := ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "CPF ou CNPJ inválido.")
}

func TestRegister_VerifiedDocument(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t, func(cfg *config.Config) {
		cfg.Registration.VerifyDocument = true
	})

	body := registerBody()
	body["cpfCnpj"] = "529.982.247-24"
	res, resBody := ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "CPF ou CNPJ inválido.")

	body["cpfCnpj"] = "529.982.247-25"
	res, resBody = ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, resBody)
}

func TestListCouriers(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	id, body := registerCourier(t, ts)

	res, resBody := ts.SendRequest(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list []map[string]interface{}
	helpers.DecodeJSON(t, resBody, &list)
	require.Len(t, list, 1)
	assert.EqualValues(t, id, list[0]["id"])
	assert.Equal(t, body["email"], list[0]["email"])
	assert.Equal(t, []interface{}{"Seg", "Ter", "Qua"}, list[0]["diasDisponivel"])
	assert.EqualValues(t, 1, list[0]["disponivel"])
	assert.Nil(t, list[0]["tipoDeVeiculo"])
	assert.NotContains(t, resBody, "senha")
	assert.NotContains(t, resBody, body["senha"])
}

func TestGetCourier(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	id, body := registerCourier(t, ts)

	res, resBody := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/entregadores/%d", id), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var detail map[string]interface{}
	helpers.DecodeJSON(t, resBody, &detail)
	assert.EqualValues(t, id, detail["COD_ID_ENTREGADOR"])
	assert.Equal(t, body["nome"], detail["DSC_NOME"])
	assert.Equal(t, body["imagemEntregador"], detail["IMG_ENTREGADOR"])
	assert.EqualValues(t, 1, detail["NUM_DISPONIVEL"])
	assert.Nil(t, detail["TIPO_DE_VEICULO"])

	res, resBody = ts.SendRequest(t, http.MethodGet, "/entregadores/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, resBody, "Entregador não encontrado.")

	res, _ = ts.SendRequest(t, http.MethodGet, "/entregadores/abc", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSetAvailability(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	id, _ := registerCourier(t, ts)
	path := fmt.Sprintf("/entregadores/%d/disponibilidade", id)

	res, resBody := ts.SendRequest(t, http.MethodPatch, path, "", map[string]int{"disponibilidade": 2})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "Disponibilidade inválida.")

	res, resBody = ts.SendRequest(t, http.MethodPatch, path, "", map[string]int{"disponibilidade": 0})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, resBody, "Disponibilidade atualizada com sucesso.")

	res, _ = ts.SendRequest(t, http.MethodPatch, path, "", map[string]int{"disponibilidade": 1})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	_, resBody = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/entregadores/%d", id), "", nil)
	assert.Contains(t, resBody, `"NUM_DISPONIVEL":1`)

	res, _ = ts.SendRequest(t, http.MethodPatch, "/entregadores/9999/disponibilidade", "", map[string]int{"disponibilidade": 1})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, resBody := ts.SendRequest(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, resBody)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}
