package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/server/http/dto"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// Ordered from most to least specific; the first match wins.
var errorMappings = []errorMapping{
	{domainErrors.ErrInvalidCredential, http.StatusUnauthorized, "INVALID_CREDENTIAL"},
	{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domainErrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{domainErrors.ErrDuplicateStore, http.StatusConflict, "DUPLICATE_STORE"},
	{domainErrors.ErrDuplicateUser, http.StatusConflict, "DUPLICATE_USER"},
	{domainErrors.ErrInvalidScore, http.StatusUnprocessableEntity, "INVALID_SCORE"},
	{domainErrors.ErrStoreNotFound, http.StatusNotFound, "STORE_NOT_FOUND"},
	{domainErrors.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{domainErrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domainErrors.ErrInvalidOwner, http.StatusBadRequest, "INVALID_OWNER"},
	{domainErrors.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
	{domainErrors.ErrStorageUnavailable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
}

// statusFor maps a domain error to its HTTP status and error code.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}

// respondError writes the uniform error body. Internal failures never leak details.
func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Code: code, Message: message})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: message})
}
