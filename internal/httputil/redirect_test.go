// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipes/pkg/types"
)

func TestNewClientTimeout(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewClient(types.HTTPConfig{}).Timeout)
	assert.Equal(t, 3*time.Second, NewClient(types.HTTPConfig{Timeout: 3 * time.Second}).Timeout)
}

func TestNoRedirect_StopsAtFirstRedirect(t *testing.T) {
	var targetHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/target", http.StatusFound)
	})
	mux.HandleFunc("/target", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&targetHits, 1)
		w.WriteHeader(http.StatusOK)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := NoRedirect(ts.Client()).Get(ts.URL + "/start")
	require.NoError(t, err)
	defer Discard(resp)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, IsRedirect(resp))
	assert.Equal(t, int32(0), atomic.LoadInt32(&targetHits))
}

func TestNoRedirect_LeavesOriginalClientUntouched(t *testing.T) {
	orig := &http.Client{Timeout: time.Second}
	c := NoRedirect(orig)

	assert.Nil(t, orig.CheckRedirect)
	assert.NotNil(t, c.CheckRedirect)
	assert.Equal(t, time.Second, c.Timeout)
}

func TestNoRedirect_NilClient(t *testing.T) {
	c := NoRedirect(nil)
	require.NotNil(t, c)
	assert.NotNil(t, c.CheckRedirect)
	assert.Nil(t, http.DefaultClient.CheckRedirect)
}

func TestIsRedirect(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusMovedPermanently, true},
		{http.StatusFound, true},
		{http.StatusSeeOther, true},
		{http.StatusTemporaryRedirect, true},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, IsRedirect(&http.Response{StatusCode: tt.status}))
		})
	}
}
