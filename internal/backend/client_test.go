package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtue/internal/domain"
	"virtue/internal/log"
)

func TestListFavorites(t *testing.T) {
	t.Run("decodes the wire format", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/favorites", r.URL.Path)
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id":"1","streamerUuid":"u1","streamerHrName":"alpha","streamerType":"obs",
				 "configTemplateName":"hd","computeUnitIP":"10.0.0.5","isAlive":"true",
				 "addedAt":"2025-06-01T12:00:00Z"},
				{"id":"2","streamerUuid":"u2","streamerHrName":"beta","isAlive":"false"}
			]`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok123", log.NullLogger())
		favs, err := c.ListFavorites(context.Background())
		require.NoError(t, err)
		require.Len(t, favs, 2)

		assert.Equal(t, "u1", favs[0].StreamerUUID)
		assert.Equal(t, "alpha", favs[0].StreamerHrName)
		assert.Equal(t, "hd", favs[0].ConfigTemplateName)
		assert.Equal(t, "10.0.0.5", favs[0].ComputeUnitIP)
		assert.True(t, favs[0].Alive())
		assert.Equal(t, "2025-06-01T12:00:00Z", favs[0].AddedAt)
		assert.False(t, favs[1].Alive())
	})

	t.Run("empty listing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		favs, err := c.ListFavorites(context.Background())
		require.NoError(t, err)
		assert.Empty(t, favs)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		_, err := c.ListFavorites(context.Background())
		assert.Error(t, err)
	})
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"server error", http.StatusInternalServerError, domain.ErrBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "tok", log.NullLogger())
			_, err := c.ListFavorites(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unreachable server", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "tok", log.NullLogger())
		_, err := c.ListFavorites(context.Background())
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}

func TestCreateFavorite(t *testing.T) {
	sample := domain.Favorite{
		StreamerUUID:   "u1",
		StreamerHrName: "alpha",
		StreamerType:   "obs",
		IsAlive:        "true",
		AddedAt:        "2025-06-01T12:00:00Z",
	}

	t.Run("posts the camelCase payload", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/favorites", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		require.NoError(t, c.CreateFavorite(context.Background(), sample))

		assert.Equal(t, "u1", got["streamerUuid"])
		assert.Equal(t, "alpha", got["streamerHrName"])
		assert.Equal(t, "true", got["isAlive"])
		assert.Equal(t, "2025-06-01T12:00:00Z", got["addedAt"])
	})

	t.Run("conflict means already favorited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		assert.NoError(t, c.CreateFavorite(context.Background(), sample))
	})

	t.Run("server error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		err := c.CreateFavorite(context.Background(), sample)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}

func TestDeleteFavorite(t *testing.T) {
	t.Run("deletes by streamer UUID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/favorites/u1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		assert.NoError(t, c.DeleteFavorite(context.Background(), "u1"))
	})

	t.Run("missing favorite maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok", log.NullLogger())
		err := c.DeleteFavorite(context.Background(), "u1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListStreamers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/streamers", r.URL.Path)
		w.Write([]byte(`[
			{"streamer_uuid":"u1","streamer_hr_name":"alpha","streamer_type":"obs",
			 "config_template_name":"hd","compute_unit_ip":"10.0.0.5","is_alive":"true"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", log.NullLogger())
	streamers, err := c.ListStreamers(context.Background())
	require.NoError(t, err)
	require.Len(t, streamers, 1)
	assert.Equal(t, "u1", streamers[0].StreamerUUID)
	assert.Equal(t, "alpha", streamers[0].StreamerHrName)
	assert.Equal(t, "hd", streamers[0].ConfigTemplateName)
}

func TestLogin(t *testing.T) {
	t.Run("returns the access token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "admin", req["username"])
			assert.Equal(t, "hunter2", req["password"])

			w.Write([]byte(`{"access_token":"tok123"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", log.NullLogger())
		token, err := c.Login(context.Background(), "admin", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "tok123", token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", log.NullLogger())
		_, err := c.Login(context.Background(), "admin", "wrong")
		assert.ErrorIs(t, err, domain.ErrAuthFailed)
	})

	t.Run("empty token is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", log.NullLogger())
		_, err := c.Login(context.Background(), "admin", "hunter2")
		assert.ErrorIs(t, err, domain.ErrAuthFailed)
	})
}
