package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"meu_delivery/internal/auth"
	"meu_delivery/internal/config"
	"meu_delivery/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoginFlow - register, log in and read the token claims
func TestLoginFlow(t *testing.T) {
	t.Parallel()

	// 1. Arrange
	ts := helpers.NewTestServer(t)
	id, body := registerCourier(t, ts)

	// 2. Act
	res, resBody := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email": body["email"],
		"senha": body["senha"],
	})

	// 3. Assert
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)
	var login struct {
		Token   string `json:"token"`
		Courier struct {
			ID    uint   `json:"id"`
			Name  string `json:"nome"`
			Email string `json:"email"`
		} `json:"entregador"`
	}
	helpers.DecodeJSON(t, resBody, &login)
	assert.Equal(t, id, login.Courier.ID)
	assert.Equal(t, body["nome"], login.Courier.Name)
	assert.Equal(t, body["email"], login.Courier.Email)

	claims, err := auth.NewTokenManager(ts.Config.JWT.Secret).Parse(login.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.CourierID)
}

func TestLogin_Errors(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	courier := helpers.CreateCourier(t, ts.DB)

	tests := []struct {
		name    string
		body    map[string]string
		status  int
		message string
	}{
		{"missing password", map[string]string{"email": courier.Email}, http.StatusBadRequest, "Os campos email e senha são obrigatórios."},
		{"unknown email", map[string]string{"email": "ninguem@test.com", "senha": "x"}, http.StatusNotFound, "Usuário não encontrado."},
		{"wrong password", map[string]string{"email": courier.Email, "senha": "errada"}, http.StatusUnauthorized, "Senha incorreta."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, resBody := ts.SendRequest(t, http.MethodPost, "/login", "", tt.body)
			assert.Equal(t, tt.status, res.StatusCode)

			var errBody errorBody
			helpers.DecodeJSON(t, resBody, &errBody)
			assert.Equal(t, tt.message, errBody.Error)
		})
	}
}

// TestProtectedCourierRoutes - with protection on, only the courier's own token changes its state
func TestProtectedCourierRoutes(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t, func(cfg *config.Config) {
		cfg.Auth.ProtectCourierRoutes = true
	})
	courier := helpers.CreateCourier(t, ts.DB)
	other := helpers.CreateCourier(t, ts.DB)
	token := loginCourier(t, ts, courier.Email, helpers.DefaultPassword)
	otherToken := loginCourier(t, ts, other.Email, helpers.DefaultPassword)

	path := fmt.Sprintf("/entregadores/%d/disponibilidade", courier.ID)
	body := map[string]int{"disponibilidade": 0}

	res, _ := ts.SendRequest(t, http.MethodPatch, path, "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, resBody := ts.SendRequest(t, http.MethodPatch, path, otherToken, body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, resBody, "Token não pertence a este entregador.")

	res, _ = ts.SendRequest(t, http.MethodPatch, path, "not-a-token", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, resBody = ts.SendRequest(t, http.MethodPatch, path, token, body)
	assert.Equal(t, http.StatusOK, res.StatusCode, resBody)

	// reads stay public
	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/entregadores/%d", courier.ID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
