package web

import (
	"net/http"
	"time"
)

// NewClient returns an HTTP client with the given overall timeout. Besides http and https it
// serves file:// URLs from the local file system.
func NewClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
