package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	prevLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.TraceLevel)
	defer logrus.SetLevel(prevLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/notes", nil)
	req.Header.Set("User-Agent", "test-agent")
	LogRequest()(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request served", entry.Message)
	assert.Equal(t, http.StatusCreated, entry.Data["status"])
	assert.Equal(t, "/notes", entry.Data["path"])
	assert.Equal(t, "test-agent", entry.Data["ua"])
}
