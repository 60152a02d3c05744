package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	capi "github.com/apetrenko/contentgen/internal/client/api"
)

type staticSession struct{}

func (staticSession) Token(_ context.Context) (string, bool)     { return "tok", true }
func (staticSession) SetToken(_ context.Context, _ string) error { return nil }
func (staticSession) Clear(_ context.Context) error              { return nil }

func TestAdminOverviewFanOut(t *testing.T) {
	responses := map[string]string{
		"/admin/dashboard": `{"users":2,"contents":5,"templates":1,"top_languages":[],"top_tones":[]}`,
		"/admin/users":     `[{"id":1,"username":"alice"},{"id":2,"username":"bob"}]`,
		"/admin/contents":  `[{"id":10,"title":"t"}]`,
		"/admin/templates": `[{"id":20,"name":"n"}]`,
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		require.True(t, ok, "unexpected path %s", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	r := NewAdminOverviewResource(capi.NewClient(ts.URL, staticSession{}))
	require.NoError(t, r.Load(context.Background()))

	snap := r.Snapshot()
	assert.Equal(t, int64(2), snap.Value.Dashboard.Users)
	assert.Len(t, snap.Value.Users, 2)
	assert.Len(t, snap.Value.Contents, 1)
	assert.Len(t, snap.Value.Templates, 1)
}

func TestAdminOverviewPartialFailureFailsCycle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/users" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"internal server error"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	r := NewAdminOverviewResource(capi.NewClient(ts.URL, staticSession{}))
	require.Error(t, r.Load(context.Background()))

	snap := r.Snapshot()
	assert.Equal(t, Failed, snap.State)
	assert.False(t, snap.HasValue)
}

func TestSystemStatusFanOut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/system/health":
			_, _ = w.Write([]byte(`{"status":"healthy","database":"connected","gemini_api":"configured","version":"dev","timestamp":"2025-01-01T00:00:00Z"}`))
		case "/admin/system/stats":
			_, _ = w.Write([]byte(`{"database":{"users":1,"contents":2,"templates":3},"content_by_status":{"draft":1}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	r := NewSystemStatusResource(capi.NewClient(ts.URL, staticSession{}))
	require.NoError(t, r.Load(context.Background()))

	snap := r.Snapshot()
	assert.Equal(t, "healthy", snap.Value.Health.Status)
	assert.Equal(t, int64(3), snap.Value.Stats.Database.Templates)
}
