package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"any origin when unconfigured", nil, http.MethodGet, "http://a.example", "http://a.example", http.StatusOK},
		{"listed origin", []string{"http://a.example"}, http.MethodGet, "http://a.example", "http://a.example", http.StatusOK},
		{"unlisted origin", []string{"http://a.example"}, http.MethodGet, "http://b.example", "", http.StatusOK},
		{"wildcard", []string{"*"}, http.MethodGet, "http://b.example", "http://b.example", http.StatusOK},
		{"preflight", nil, http.MethodOptions, "http://a.example", "http://a.example", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware(tt.allowed))
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}
