package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/nexus-admin/internal/security/password"
)

var cheap = password.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func newHandler(t *testing.T, hasher password.Hasher, stored password.Params) *Handler {
	t.Helper()
	phc, err := password.NewHasher(stored).Hash("12345678")
	require.NoError(t, err)
	return New(Credentials{Username: "admin", PasswordHash: phc}, hasher, nil)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	return rr
}

func TestLogin(t *testing.T) {
	h := newHandler(t, password.NewHasher(cheap), cheap)

	rr := post(h, `{"username":"admin","password":"12345678"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"status":"success","data":{"username":"admin","redirect":"/dashboard"}}`, rr.Body.String())

	assert.Equal(t, http.StatusUnauthorized, post(h, `{"username":"admin","password":"wrong-pass"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(h, `{"username":"root","password":"12345678"}`).Code)
}

func TestLoginComparesPasswordExactly(t *testing.T) {
	h := newHandler(t, password.NewHasher(cheap), cheap)

	assert.Equal(t, http.StatusUnauthorized, post(h, `{"username":"admin","password":" 12345678 "}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(h, `{"username":"admin","password":"12345678\t"}`).Code)
	assert.Equal(t, http.StatusOK, post(h, `{"username":" admin ","password":"12345678"}`).Code, "username is trimmed")
}

func TestLoginValidation(t *testing.T) {
	h := newHandler(t, password.NewHasher(cheap), cheap)

	rr := post(h, `{"username":" ","password":"123"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), `"field":"username"`)
	assert.Contains(t, rr.Body.String(), `"field":"password"`)

	assert.Equal(t, http.StatusBadRequest, post(h, `{"user":"admin"}`).Code)
}

func TestLoginRehashesWeakHash(t *testing.T) {
	stronger := cheap
	stronger.Iterations = 2
	h := newHandler(t, password.NewHasher(stronger), cheap)
	before := h.creds.PasswordHash

	require.Equal(t, http.StatusOK, post(h, `{"username":"admin","password":"12345678"}`).Code)
	assert.NotEqual(t, before, h.creds.PasswordHash)
	assert.False(t, h.hasher.NeedsRehash(h.creds.PasswordHash))

	require.Equal(t, http.StatusOK, post(h, `{"username":"admin","password":"12345678"}`).Code)
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0, Rate("12345").Score)
	assert.Equal(t, 1, Rate("12345678").Score)
	assert.Equal(t, 4, Rate("Correct-Horse-9").Score)

	weak := Rate("admin2025xyz!", "admin")
	strong := Rate("bravo2025xyz!", "admin")
	assert.Less(t, weak.Score, strong.Score)
	assert.NotEmpty(t, Rate("abc").Warning)
}
