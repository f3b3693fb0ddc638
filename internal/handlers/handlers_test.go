package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos_terminal/internal/models"
	"pos_terminal/internal/receipt"
	"pos_terminal/internal/router"
	"pos_terminal/internal/services"
	"pos_terminal/internal/state"
	"pos_terminal/internal/storage"
)

type testAPI struct {
	engine   *gin.Engine
	terminal services.TerminalService
	token    string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	terminal := services.NewTerminalService(state.NewContainer(storage.NewMemoryStore()))
	admin, err := services.NewOperator(1, "Admin", "Admin", "9999")
	require.NoError(t, err)
	auth := services.NewAuthService([]services.Operator{admin}, terminal)
	receipts := receipt.Renderer{
		StoreName: "Test Cafe",
		QR:        receipt.DefaultQRGenerator{BaseURL: "http://localhost:8080"},
	}

	engine := gin.New()
	router.Setup(engine, terminal, auth, receipts)

	api := &testAPI{engine: engine, terminal: terminal}
	api.token = api.login(t)
	return api
}

func (a *testAPI) login(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"operatorId": 1, "pin": "9999"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func TestStateRequiresAuth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/terminal/state", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/terminal/state", nil, api.token)
	assert.Equal(t, http.StatusOK, w.Code)

	var st models.TerminalState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	// Login marked the operator as current user.
	assert.Equal(t, int64(1), st.CurrentUserID)
}

func TestLoginRejectsWrongPin(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"operatorId": 1, "pin": "0000"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	// Seed a product through the admin surface.
	w := api.do(t, http.MethodPost, "/api/v1/items", gin.H{"name": "Espresso", "price": 3.0}, api.token)
	require.Equal(t, http.StatusCreated, w.Code)
	item := api.terminal.State().Products[0]

	// Create an order and add the product twice.
	w = api.do(t, http.MethodPost, "/api/v1/orders", nil, api.token)
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	for i := 0; i < 2; i++ {
		w = api.do(t, http.MethodPost, "/api/v1/orders/current/items", gin.H{"productId": item.ID}, api.token)
		require.Equal(t, http.StatusOK, w.Code)
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 6.0, order.TotalAmount)

	// Charge it and fetch the receipt.
	w = api.do(t, http.MethodPost, "/api/v1/orders/charge/1", order, api.token)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/orders/closed/1/receipt", nil, api.token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Espresso")
	assert.Contains(t, w.Body.String(), "6.00")

	w = api.do(t, http.MethodGet, "/api/v1/orders/closed/1/receipt.png", nil, api.token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestDeleteItemNotFound(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(t, http.MethodDelete, "/api/v1/items/404", nil, api.token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemUnknownProduct(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(t, http.MethodPost, "/api/v1/orders/current/items", gin.H{"productId": 42}, api.token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetCurrentSelector(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/api/v1/terminal/current/table/3", nil, api.token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), api.terminal.State().CurrentTableID)

	w = api.do(t, http.MethodPut, "/api/v1/terminal/current/bogus/3", nil, api.token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
