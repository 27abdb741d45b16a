package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kos-be-svc/pkg/apperr"
)

func runErrorResponse(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorResponse(c, err)
	return w
}

func TestErrorResponseStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperr.Validation("Data tidak valid"), http.StatusBadRequest},
		{"conflict maps to 400", apperr.Conflict("Sudah tercatat"), http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("Token tidak valid"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("Akses ditolak"), http.StatusForbidden},
		{"not found", apperr.NotFound("Tidak ditemukan"), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runErrorResponse(tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestErrorResponseHidesInternalDetails(t *testing.T) {
	w := runErrorResponse(errors.New("pq: connection refused"))
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Terjadi kesalahan pada server")
}
