package slides

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/carousel/internal/carousel"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, defaultFeedBind, u.Host)

	u, err = parseBaseURL("https://feed.example:8443/path?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "https://feed.example:8443", u.String())
}

func TestClient_FetchSlides(t *testing.T) {
	var gotUserAgent, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Document{Slides: []carousel.SlideSource{{Title: "Remote"}}})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Remote", got[0].Title)
	assert.Equal(t, slidesPath, gotPath)
	assert.Equal(t, defaultUserAgent, gotUserAgent)
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = c.FetchSlides(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.FetchSlides(context.Background())
	assert.Error(t, err)
}
