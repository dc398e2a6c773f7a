package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/artpar/auweb/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client with defaults", func(t *testing.T) {
		client := NewClient()
		assert.NotNil(t, client)
		assert.Equal(t, 30*time.Second, client.Config().Timeout)
		assert.True(t, client.Config().FollowRedirect)
	})

	t.Run("creates client with custom timeout", func(t *testing.T) {
		client := NewClient(WithTimeout(5 * time.Second))
		assert.Equal(t, 5*time.Second, client.Config().Timeout)
	})

	t.Run("creates client with custom transport", func(t *testing.T) {
		client := NewClient(WithTransport(&http.Transport{MaxIdleConns: 100}))
		assert.NotNil(t, client)
	})
}

func TestClient_Send_GET(t *testing.T) {
	t.Run("sends GET request and receives response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/users", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"name":"John"}`))
		}))
		defer server.Close()

		client := NewClient()
		req, _ := core.NewRequest(core.MethodGet, server.URL+"/users")

		resp, err := client.Send(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.Status().Code())
		assert.Equal(t, "application/json", resp.Headers().Get("content-type"))
		assert.Equal(t, `{"name":"John"}`, resp.Body().String())
		assert.Equal(t, req.ID(), resp.RequestID())
	})

	t.Run("sends headers with values as typed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, []string{"a", "b"}, r.Header.Values("X-Multi"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		req, _ := core.NewRequest(core.MethodGet, server.URL)
		req.Headers().Add("Accept", " application/json")
		req.Headers().Add("X-Multi", "a")
		req.Headers().Add("x-multi", "b")

		resp, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.Status().Code())
		assert.True(t, resp.Body().IsEmpty())
	})
}

func TestClient_Send_POST(t *testing.T) {
	t.Run("form body sets content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "b=c", r.PostForm.Get("a"))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		req, _ := core.NewRequest(core.MethodPostForm, server.URL)
		req.SetBody(core.NewFormBody("a=b%3Dc"))

		resp, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.Status().Code())
	})

	t.Run("raw body keeps user content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "<x/>", string(body))
			assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		req, _ := core.NewRequest(core.MethodPostRaw, server.URL)
		req.Headers().Add("Content-Type", "application/xml")
		req.SetBody(core.NewRawBody([]byte("<x/>"), "text/plain"))

		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})
}

func TestClient_Send_Verbs(t *testing.T) {
	methods := []core.Method{core.MethodPut, core.MethodPatch, core.MethodDelete, core.MethodHead, core.MethodOptions}

	for _, method := range methods {
		t.Run(method.String(), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method.Verb(), r.Method)
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			req, _ := core.NewRequest(method, server.URL)
			resp, err := NewClient().Send(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.Status().Code())
		})
	}
}

func TestClient_Send_Redirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte("arrived"))
	}))
	defer server.Close()

	req, _ := core.NewRequest(core.MethodGet, server.URL+"/old")

	t.Run("follows by default", func(t *testing.T) {
		resp, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "arrived", resp.Body().String())
	})

	t.Run("stops when disabled", func(t *testing.T) {
		resp, err := NewClient(WithNoRedirects()).Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status().Code())
	})
}

func TestClient_Send_Errors(t *testing.T) {
	t.Run("returns error for invalid URL", func(t *testing.T) {
		req, _ := core.NewRequest(core.MethodGet, "://bad")
		_, err := NewClient().Send(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("returns error for connection refused", func(t *testing.T) {
		req, _ := core.NewRequest(core.MethodGet, "http://127.0.0.1:1")
		_, err := NewClient(WithTimeout(time.Second)).Send(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		req, _ := core.NewRequest(core.MethodGet, server.URL)
		_, err := NewClient().Send(ctx, req)
		assert.Error(t, err)
	})
}

func TestClient_Send_Timing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(strings.Repeat("x", 1<<16)))
	}))
	defer server.Close()

	req, _ := core.NewRequest(core.MethodGet, server.URL)
	resp, err := NewClient().Send(context.Background(), req)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, resp.Timing().Total, 10*time.Millisecond)
	assert.Equal(t, int64(1<<16), resp.Body().Size())
}
