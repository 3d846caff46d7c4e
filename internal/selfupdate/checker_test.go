package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/doubtbox/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		latest    string
		current   string
		available bool
	}{
		{"newer available", "v2.1.0", "v2.0.0", true},
		{"patch available", "v2.0.1", "v2.0.0", true},
		{"already latest", "v2.0.0", "v2.0.0", false},
		{"running ahead of releases", "v1.9.0", "v2.0.0", false},
		{"tag without v prefix", "2.1.0", "v2.0.0", true},
		{"garbage latest tag", "nightly", "v2.0.0", false},
		{"garbage current version", "v2.1.0", "oops", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, tt.latest)
			checker := NewChecker(WithBaseURL(server.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.UpdateAvailable)
			assert.Equal(t, tt.latest, result.LatestVersion)
		})
	}
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
