package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := NotFound("product not found")

	assert.ErrorIs(t, err, NotFound(""))
	assert.NotErrorIs(t, err, Forbidden(""))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.ErrorIs(t, wrapped, NotFound(""))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to list products", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "failed to list products", Message(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("admin access required"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Validation("bad input"), http.StatusBadRequest},
		{Internal("boom", errors.New("x")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err))
	}
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("raw db detail")))
}
