package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name      string
		login     string
		pass      string
		setHeader bool
		want      int
	}{
		{name: "valid credentials", login: "admin", pass: "secret", setHeader: true, want: http.StatusOK},
		{name: "wrong password", login: "admin", pass: "nope", setHeader: true, want: http.StatusUnauthorized},
		{name: "wrong login", login: "root", pass: "secret", setHeader: true, want: http.StatusUnauthorized},
		{name: "no header", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BasicAuth("admin", "secret")(next)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/pools", nil)
			if tt.setHeader {
				req.SetBasicAuth(tt.login, tt.pass)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="Admin Area"`, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestBasicAuth_EmptyConfiguredLogin(t *testing.T) {
	handler := BasicAuth("", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pools", nil)
	req.SetBasicAuth("", "")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
