package application

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/iwat/webfile/internal/config"
)

// Test helper to create an app over an in-memory file system
func createTestApp(t *testing.T) (*App, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApp(fs, http.DefaultClient, config.Default(), logger), fs
}

// Test helper to serve a fixed page
func createTestServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

// deniedFS rejects every open with a permission error
type deniedFS struct {
	billy.Filesystem
}

func (d deniedFS) Open(name string) (billy.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func (d deniedFS) OpenFile(name string, flag int, perm os.FileMode) (billy.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

type MockHTTPClient struct {
	err      error
	requests []*http.Request
}

func (c *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.requests = append(c.requests, req)
	return nil, c.err
}
