package integration_test

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"

	"meu_delivery/internal/logger"
	"meu_delivery/test/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var bodySeq atomic.Int64

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// Keep the request log out of the test output.
	logger.SetLogger(logger.New("test", io.Discard))
	os.Exit(m.Run())
}

// registerBody returns a complete POST /entregadores body with unique email,
// phone and document.
func registerBody() map[string]interface{} {
	n := bodySeq.Add(1)
	photo := base64.StdEncoding.EncodeToString([]byte("jpeg bytes"))
	return map[string]interface{}{
		"nome":              fmt.Sprintf("Entregador HTTP %d", n),
		"email":             fmt.Sprintf("http%d@test.com", n),
		"senha":             "segredo123",
		"dataNascimento":    "1995-07-20",
		"celular":           fmt.Sprintf("(31) 9%04d-1111", n),
		"cpfCnpj":           fmt.Sprintf("%011d", 70000000000+n),
		"cnhNumero":         "12345678900",
		"cnhRegistro":       "98765432100",
		"chavePix":          fmt.Sprintf("pix-http-%d", n),
		"diasDisponivel":    "Seg, Ter, Qua",
		"horaFuncionamento": "08:00 - 18:00",
		"imagemCNH":         "data:image/jpeg;base64," + photo,
		"imagemEntregador":  photo,
	}
}

type createdBody struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// registerCourier registers a courier over HTTP and returns its id and body.
func registerCourier(t *testing.T, ts *helpers.TestServer) (uint, map[string]interface{}) {
	t.Helper()

	body := registerBody()
	res, resBody := ts.SendRequest(t, http.MethodPost, "/entregadores", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)

	var created createdBody
	helpers.DecodeJSON(t, resBody, &created)
	require.NotZero(t, created.ID)
	return created.ID, body
}

func loginCourier(t *testing.T, ts *helpers.TestServer, email, password string) string {
	t.Helper()

	res, resBody := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
		"email": email,
		"senha": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var login struct {
		Token string `json:"token"`
	}
	helpers.DecodeJSON(t, resBody, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}
