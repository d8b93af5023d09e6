package transport

import (
	"net/http"
	"time"
)

// Backend performs the HTTP exchange. *http.Client satisfies it.
type Backend interface {
	Do(req *http.Request) (*http.Response, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(req *http.Request) (*http.Response, error)

func (f BackendFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPBackend returns an *http.Client enforcing the given timeout.
func NewHTTPBackend(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
