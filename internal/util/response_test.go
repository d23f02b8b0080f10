package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithBodyAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WithBodyAndStatus([]string{"a", "b"}, http.StatusInternalServerError, rec)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestWithBodyAndStatusNoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WithBodyAndStatus(nil, http.StatusBadRequest, rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, rec.Body.String())
}
