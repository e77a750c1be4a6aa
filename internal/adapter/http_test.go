// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(Config{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

var sampleEntry = models.DiaryEntry{
	ID:          "0192a3b4-c5d6-7e8f-9a0b-1c2d3e4f5a6b",
	Title:       "Trip",
	Description: "d",
	Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	Location:    "Paris",
	Photos:      models.Photos{},
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:3004", want: "http://localhost:3004"},
		{raw: " https://diary.example/ ", want: "https://diary.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(Config{}, logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, a)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		_, _ = w.Write([]byte("Hello World!"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/register", r.URL.Path)

			var u models.User
			require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "pw1", u.Password)

			writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "User registered successfully"})
		}))
		defer srv.Close()

		err := newTestAdapter(t, srv.URL).Register(context.Background(), models.User{Username: "alice", Password: "pw1"})
		require.NoError(t, err)
	})

	t.Run("conflict", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusConflict, models.MessageResponse{Message: "User already exists"})
		}))
		defer srv.Close()

		err := newTestAdapter(t, srv.URL).Register(context.Background(), models.User{Username: "alice", Password: "pw1"})
		require.ErrorIs(t, err, ErrConflict)
		assert.Contains(t, err.Error(), "User already exists")
	})
}

func TestLogin(t *testing.T) {
	t.Run("stores token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/login", r.URL.Path)
			writeJSON(t, w, http.StatusOK, models.TokenResponse{Token: "tok"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		token, err := a.Login(context.Background(), models.User{Username: "alice", Password: "pw1"})
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, "tok", a.Token())
	})

	t.Run("wrong password", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid username or password"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		_, err := a.Login(context.Background(), models.User{Username: "alice", Password: "x"})
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, a.Token())
	})

	t.Run("empty token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, models.TokenResponse{})
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.User{Username: "alice", Password: "pw1"})
		assert.Error(t, err)
	})
}

// ── Diary entries ───────────────────────────────────────────────────────────

func TestDiaryEntries_SendBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Unauthorized"})
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/diary-entries":
			writeJSON(t, w, http.StatusOK, []models.DiaryEntry{sampleEntry})
		case r.Method == http.MethodPost && r.URL.Path == "/diary-entries":
			var in models.DiaryEntryInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Trip", in.Title)
			writeJSON(t, w, http.StatusCreated, sampleEntry)
		case r.Method == http.MethodGet && r.URL.Path == "/diary-entries/"+sampleEntry.ID:
			writeJSON(t, w, http.StatusOK, sampleEntry)
		case r.Method == http.MethodPut && r.URL.Path == "/diary-entries/"+sampleEntry.ID:
			replaced := sampleEntry
			replaced.Title = "Trip 2"
			writeJSON(t, w, http.StatusOK, replaced)
		case r.Method == http.MethodDelete && r.URL.Path == "/diary-entries/"+sampleEntry.ID:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "Diary entry not found"})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)

	_, err := a.ListDiaryEntries(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" tok ")
	assert.Equal(t, "tok", a.Token())

	list, err := a.ListDiaryEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.DiaryEntry{sampleEntry}, list)

	input := models.DiaryEntryInput{Title: "Trip", Description: "d", Date: "2024-01-01", Location: "Paris"}
	created, err := a.CreateDiaryEntry(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, sampleEntry, created)

	got, err := a.GetDiaryEntry(ctx, sampleEntry.ID)
	require.NoError(t, err)
	assert.Equal(t, sampleEntry, got)

	replaced, err := a.ReplaceDiaryEntry(ctx, sampleEntry.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Trip 2", replaced.Title)

	require.NoError(t, a.DeleteDiaryEntry(ctx, sampleEntry.ID))

	_, err = a.GetDiaryEntry(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Diary entry not found")
}

func TestListDiaryEntries_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.DiaryEntry{})
	}))
	defer srv.Close()

	list, err := newTestAdapter(t, srv.URL).ListDiaryEntries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("plain text"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Health(context.Background())
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "plain text")
		})
	}
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 504")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusGatewayTimeout))
}
