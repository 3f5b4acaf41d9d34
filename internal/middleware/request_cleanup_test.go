package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitAndDrainRequest(t *testing.T) {
	var readErr error
	var readBody string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var b []byte
		b, readErr = io.ReadAll(r.Body)
		readBody = string(b)
	})

	handler := LimitAndDrainRequest(8)(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/notes", strings.NewReader("30 pushups")))
	require.Error(t, readErr)
	var maxBytesErr *http.MaxBytesError
	assert.True(t, errors.As(readErr, &maxBytesErr))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/notes", strings.NewReader("1l water")))
	require.NoError(t, readErr)
	assert.Equal(t, "1l water", readBody)

	unlimited := LimitAndDrainRequest(0)(next)
	rr = httptest.NewRecorder()
	unlimited.ServeHTTP(rr, httptest.NewRequest("POST", "/notes", strings.NewReader("30 pushups and 500ml water")))
	require.NoError(t, readErr)
	assert.Equal(t, "30 pushups and 500ml water", readBody)
}
