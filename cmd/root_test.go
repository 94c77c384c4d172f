package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mage-os/github-dashboard/internal/config"
	"github.com/mage-os/github-dashboard/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(serverURL, dir string) *config.Config {
	return &config.Config{
		Organization: config.Organization,
		Token:        "test-token",
		GraphQLURL:   serverURL,
		OutputDir:    dir,
		OutputFile:   config.OutputFile,
	}
}

func TestRun_WritesDashboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"data":{"organization":{"repositories":{"nodes":[{
			"name":"example","url":"https://github.com/mage-os/example","updatedAt":"2024-03-05T10:00:00Z",
			"issues":{"totalCount":2,"nodes":[
				{"title":"Crash","url":"https://github.com/mage-os/example/issues/1","createdAt":"2024-01-02T09:00:00Z","updatedAt":"2024-03-01T09:00:00Z","labels":{"nodes":[{"name":"bug","color":"d73a4a"}]}},
				{"title":"Typo","url":"https://github.com/mage-os/example/issues/2","createdAt":"2024-02-10T09:00:00Z","updatedAt":"2024-02-11T09:00:00Z","labels":{"nodes":[]}}
			]},
			"pullRequests":{"totalCount":1,"nodes":[
				{"title":"Fix","url":"https://github.com/mage-os/example/pull/3","createdAt":"2024-03-02T09:00:00Z","updatedAt":"2024-03-04T09:00:00Z","author":{"login":"alice"}}
			]}
		}]}}}}`)
	}))
	defer server.Close()
	dir := filepath.Join(t.TempDir(), "dist")
	var stdout bytes.Buffer

	err := run(context.Background(), testConfig(server.URL, dir), log.New(io.Discard, "", 0), &stdout)

	require.NoError(t, err)
	assert.Equal(t, "Dashboard generated successfully!\n", stdout.String())
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	html := string(data)
	assert.Regexp(t, `Total Repositories</h4>\s*<strong>1</strong>`, html)
	assert.Regexp(t, `Total Open Issues</h4>\s*<strong>2</strong>`, html)
	assert.Contains(t, html, "background: #d73a4a30")
	assert.Contains(t, html, "| By: alice")
}

func TestRun_RemoteFailureKeepsPreviousOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	dir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	previous := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(previous, []byte("previous run"), 0o644))
	var stdout bytes.Buffer

	err := run(context.Background(), testConfig(server.URL, dir), log.New(io.Discard, "", 0), &stdout)

	var remote *gateway.RemoteServiceError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(previous)
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(data))
}

func TestRun_RemoteFailureCreatesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	dir := filepath.Join(t.TempDir(), "dist")

	err := run(context.Background(), testConfig(server.URL, dir), log.New(io.Discard, "", 0), io.Discard)

	assert.Error(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
