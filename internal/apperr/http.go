package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// WriteHTTP maps an error to an HTTP response. Unclassified errors
// become a generic 500.
func WriteHTTP(c *gin.Context, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		Write(c, http.StatusInternalServerError, "internal_error", "Something went wrong.")
		return
	}

	status := http.StatusInternalServerError
	switch ae.Kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindForbidden:
		status = http.StatusForbidden
	case KindInvalidArgument:
		status = http.StatusBadRequest
	case KindInvalidState:
		status = http.StatusConflict
	case KindDependencyFailure:
		status = http.StatusBadGateway
	}

	msg := ae.Message
	if msg == "" {
		msg = ae.Code
	}
	Write(c, status, ae.Code, msg)
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
