package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anyulbade/billplz/internal/model"
	"github.com/anyulbade/billplz/pkg/billplz"
)

type upstream struct {
	mu     sync.Mutex
	status int
	body   string
	calls  int
	method string
	path   string
	sent   []byte
}

func (u *upstream) fields(t *testing.T) map[string]any {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	var m map[string]any
	require.NoError(t, json.Unmarshal(u.sent, &m))
	return m
}

func (u *upstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

func newUpstream(t *testing.T, status int, body string) (*billplz.Client, *upstream) {
	t.Helper()

	u := &upstream{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.calls++
		u.method = r.Method
		u.path = r.URL.EscapedPath()
		u.sent, _ = io.ReadAll(r.Body)
		u.mu.Unlock()

		w.WriteHeader(u.status)
		_, _ = io.WriteString(w, u.body)
	}))
	t.Cleanup(srv.Close)

	return billplz.NewWithBaseURL(srv.URL, "test-api-key"), u
}

type fakeJournal struct {
	mu      sync.Mutex
	entries []*model.JournalEntry
	fail    bool
}

func (j *fakeJournal) Record(_ context.Context, e *model.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.fail {
		return errors.New("connection refused")
	}
	j.entries = append(j.entries, e)
	return nil
}

func (j *fakeJournal) last(t *testing.T) *model.JournalEntry {
	t.Helper()
	j.mu.Lock()
	defer j.mu.Unlock()
	require.NotEmpty(t, j.entries)
	return j.entries[len(j.entries)-1]
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func boolPtr(b bool) *bool { return &b }
