package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		header    string
		status    int
		wantLevel logrus.Level
	}{
		{name: "keeps incoming id", header: "abc-123", status: http.StatusOK, wantLevel: logrus.InfoLevel},
		{name: "generates id", header: "", status: http.StatusNotFound, wantLevel: logrus.WarnLevel},
		{name: "server error", header: "srv-1", status: http.StatusInternalServerError, wantLevel: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			var ctxID string
			router := gin.New()
			router.Use(RequestID())
			router.Use(RequestLogger(logger))
			router.GET("/probe", func(c *gin.Context) {
				ctxID = RequestIDFromContext(c.Request.Context())
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			router.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatal("Expected request id header")
			}
			if tt.header != "" && got != tt.header {
				t.Errorf("Expected request id %s, got %s", tt.header, got)
			}
			if ctxID != got {
				t.Errorf("Expected request id %s in context, got %s", got, ctxID)
			}

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("Expected an access log entry")
			}
			if entry.Level != tt.wantLevel {
				t.Errorf("Expected level %s, got %s", tt.wantLevel, entry.Level)
			}
			if entry.Data["request_id"] != got {
				t.Errorf("Expected request_id %s, got %v", got, entry.Data["request_id"])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Message != "Request panicked" {
		t.Error("Expected panic to be logged")
	}
}
