package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLabel(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "buyer", header: "buyer", want: "buyer"},
		{name: "seller", header: "seller", want: "seller"},
		{name: "missing", header: "", want: "anonymous"},
		{name: "unknown", header: "root", want: "anonymous"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/orders/mine", nil)
			if tc.header != "" {
				r.Header.Set(HeaderUserRole, tc.header)
			}
			assert.Equal(t, tc.want, roleLabel(r))
		})
	}
}

func TestMetrics_PassesStatusThrough(t *testing.T) {
	h := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
