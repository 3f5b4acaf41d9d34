//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/smarttrack/internal/smartnotes"
	"github.com/2beens/smarttrack/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestNotesToContributions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t := s.T()
	today := time.Now().UTC().Format("2006-01-02")

	status, body := s.doRequest(ctx, "POST", "/notes", smartnotes.AddNoteRequest{
		Raw: "25g Protein und 500ml Wasser getrunken",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	var added smartnotes.SmartNote
	require.NoError(t, json.Unmarshal(body, &added))
	require.NotEmpty(t, added.ID)
	require.NotEmpty(t, added.Events)

	var storedEvents string
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT events::text FROM smart_note WHERE id = $1`, added.ID,
	).Scan(&storedEvents))
	assert.Contains(t, storedEvents, `"volumeMl": 500`)

	status, body = s.doRequest(ctx, "POST", "/tracking/sync", nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var syncResp tracking.SyncResponse
	require.NoError(t, json.Unmarshal(body, &syncResp))
	assert.Equal(t, 1, syncResp.Days)

	status, body = s.doRequest(ctx, "GET", fmt.Sprintf("/tracking/contributions/%s", today), nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var contribution tracking.Contribution
	require.NoError(t, json.Unmarshal(body, &contribution))
	require.NotNil(t, contribution.Water)
	require.NotNil(t, contribution.Protein)
	assert.Equal(t, 500.0, *contribution.Water)
	assert.Equal(t, 25.0, *contribution.Protein)

	status, body = s.doRequest(ctx, "PUT", "/notes/"+added.ID, smartnotes.UpdateNoteRequest{
		Raw: "700ml Wasser",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	s.doRequest(ctx, "POST", "/tracking/sync", nil)
	status, body = s.doRequest(ctx, "GET", fmt.Sprintf("/tracking/contributions/%s", today), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	contribution = tracking.Contribution{}
	require.NoError(t, json.Unmarshal(body, &contribution))
	require.NotNil(t, contribution.Water)
	assert.Equal(t, 700.0, *contribution.Water)
	assert.Nil(t, contribution.Protein)

	status, _ = s.doRequest(ctx, "DELETE", "/notes/"+added.ID, nil)
	require.Equal(t, http.StatusOK, status)

	s.doRequest(ctx, "POST", "/tracking/sync", nil)
	status, _ = s.doRequest(ctx, "GET", fmt.Sprintf("/tracking/contributions/%s", today), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.doRequest(ctx, "GET", "/notes", nil)
	require.Equal(t, http.StatusOK, status)
	var listResp smartnotes.ListResponse
	require.NoError(t, json.Unmarshal(body, &listResp))
	assert.Equal(t, 0, listResp.Total)
	assert.Empty(t, listResp.Notes)
}

func (s *IntegrationTestSuite) TestNotesRateLimit() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	limited := false
	for i := 0; i <= notesRateLimitPerMin; i++ {
		status, _ := s.doRequest(ctx, "POST", "/notes/extract", smartnotes.ExtractRequest{Raw: "30 pushups"})
		if status == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(s.T(), http.StatusOK, status)
	}
	assert.True(s.T(), limited)
}
