package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler) *HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPService(srv.URL, 5*time.Second)
}

func TestSignIn_StoresTokens(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "jane@example.com", in["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access":  "acc1",
			"refresh": "ref1",
			"user":    map[string]any{"id": "u1", "email": "jane@example.com"},
		})
	}))

	id, err := s.SignIn(context.Background(), "jane@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "u1", id.ID)

	access, refresh := s.tokens()
	require.Equal(t, "acc1", access)
	require.Equal(t, "ref1", refresh)
}

func TestRoundTrip_RefreshesExpiredTokenOnce(t *testing.T) {
	var meCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		meCalls++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"id": "u1", "email": "x@y.z"}})
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access": "fresh", "refresh": "ref2"})
	})

	s := newTestService(t, mux)
	s.setTokens("stale", "ref1")

	id, err := s.CurrentIdentity(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", id.ID)
	require.Equal(t, 2, meCalls)

	access, refresh := s.tokens()
	require.Equal(t, "fresh", access)
	require.Equal(t, "ref2", refresh)
}

func TestRoundTrip_MapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid credentials"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"error":"no"}`, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, ErrUnavailable},
		{"conflict", http.StatusConflict, `{"error":"email already registered"}`, ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			_, err := s.CurrentIdentity(context.Background())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRejection_CarriesServerMessageVerbatim(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}))

	_, err := s.SignUp(context.Background(), "dup@example.com", "pw123456", nil)
	require.ErrorIs(t, err, ErrRejected)
	require.Contains(t, err.Error(), "email already registered")
}

func TestUnreachableServer_IsUnavailable(t *testing.T) {
	s := NewHTTPService("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := s.ListJobs(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestUpload_SendsMultipartAndReturnsURL(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/storage/profile-pics", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "me.png", fh.Filename)
		require.Equal(t, "image/png", fh.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "http://blobs/profile-pics/me.png"})
	}))

	url, err := s.Upload(context.Background(), "profile-pics", "me.png", []byte{1, 2, 3}, "image/png")
	require.NoError(t, err)
	require.Equal(t, "http://blobs/profile-pics/me.png", url)
}

func TestSignOut_DropsTokensEvenOnServerError(t *testing.T) {
	s := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	s.setTokens("acc", "ref")

	err := s.SignOut(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnavailable))

	access, refresh := s.tokens()
	require.Empty(t, access)
	require.Empty(t, refresh)
}
