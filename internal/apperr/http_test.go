package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteHTTP(c, err)
	return w
}

func TestWriteHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", NotFound("appointment_not_found", "x"), http.StatusNotFound, "appointment_not_found"},
		{"forbidden", Forbidden("not_owner", "x"), http.StatusForbidden, "not_owner"},
		{"invalid argument", InvalidArgument("past_date", "x"), http.StatusBadRequest, "past_date"},
		{"invalid state", InvalidState("same_day_delete", "x"), http.StatusConflict, "same_day_delete"},
		{"dependency failure", DependencyFailure("pricing_unavailable", "x", nil), http.StatusBadGateway, "pricing_unavailable"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respondWith(tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestWriteHTTPUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("delete appointment: %w", Forbidden("not_owner", "x"))
	w := respondWith(wrapped)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
