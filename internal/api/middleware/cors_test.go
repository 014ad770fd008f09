package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantAllowed string
	}{
		{
			name:        "wildcard echoes origin",
			allowed:     []string{"*"},
			method:      http.MethodGet,
			origin:      "http://localhost:3000",
			wantAllowed: "http://localhost:3000",
		},
		{
			name:        "listed origin",
			allowed:     []string{"https://querysphere.app"},
			method:      http.MethodPost,
			origin:      "https://querysphere.app",
			wantAllowed: "https://querysphere.app",
		},
		{
			name:    "unlisted origin gets no headers",
			allowed: []string{"https://querysphere.app"},
			method:  http.MethodGet,
			origin:  "https://evil.example",
		},
		{
			name:        "preflight",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "http://localhost:3000",
			preflight:   true,
			wantAllowed: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/chat/render", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllowed == "" {
				return
			}
			assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			if tt.preflight {
				assert.Equal(t, http.MethodPost, rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
			} else {
				assert.Equal(t, "Content-Disposition, X-Request-Id", rec.Header().Get("Access-Control-Expose-Headers"))
			}
		})
	}
}

func TestCORS_PreflightStopsChain(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/chat/export", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	CORS([]string{"*"})(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, called)
}
