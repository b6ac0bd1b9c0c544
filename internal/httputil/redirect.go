// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the network phase.
package httputil

import (
	"io"
	"net/http"

	"github.com/pdiddy/recipes/pkg/types"
)

// NewClient builds the HTTP client used for search page requests. A zero
// Timeout keeps the net/http default of no timeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// NoRedirect returns a shallow copy of client that stops at the first
// redirect response instead of following it. The caller sees the 3xx
// response and can treat it as a signal. A nil client copies
// http.DefaultClient.
func NoRedirect(client *http.Client) *http.Client {
	if client == nil {
		client = http.DefaultClient
	}
	c := *client
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}

// IsRedirect reports whether resp is a redirect response.
func IsRedirect(resp *http.Response) bool {
	return resp.StatusCode >= 300 && resp.StatusCode < 400
}

// Discard drains and closes a response body so the connection can be reused.
func Discard(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
