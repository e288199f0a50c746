package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmesquita/olimpicos/internal/web/templates/layout"
)

// readFlash runs a request carrying the given cookies through the Flash
// middleware and returns what the handler saw
func readFlash(t *testing.T, cookies []*http.Cookie) *layout.FlashMessage {
	t.Helper()

	var got *layout.FlashMessage
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlash(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestFlashRoundTripsAccentedText(t *testing.T) {
	rr := httptest.NewRecorder()
	SetFlash(rr, "error", "Jogo não encontrado")

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	flash := readFlash(t, cookies)
	require.NotNil(t, flash)
	assert.Equal(t, "error", flash.Type)
	assert.Equal(t, "Jogo não encontrado", flash.Message)
}

func TestFlashCookieValueIsASCII(t *testing.T) {
	rr := httptest.NewRecorder()
	SetFlash(rr, "success", "Boa sorte na jornada!")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	for _, b := range []byte(cookies[0].Value) {
		assert.Less(t, b, byte(0x80), "cookie values must stay within ASCII")
	}
}

func TestFlashClearedAfterRead(t *testing.T) {
	var got *layout.FlashMessage
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlash(r.Context())
	}))

	rr := httptest.NewRecorder()
	SetFlash(rr, "error", "uma vez só")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	out := httptest.NewRecorder()
	handler.ServeHTTP(out, req)

	require.NotNil(t, got)
	cleared := false
	for _, c := range out.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "the flash cookie is expired once consumed")
}

func TestFlashAbsentWithoutCookie(t *testing.T) {
	assert.Nil(t, readFlash(t, nil))
}
