package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("question,answer\nQ1,A1\n"))
	}))
	defer srv.Close()

	table, err := NewFetcher(600).FetchCSV(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []Record{{"question": "Q1", "answer": "A1"}}, table.Records)
}

func TestFetchCSV_FailuresAreNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewFetcher(600).FetchCSV(context.Background(), srv.URL)

			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrParse))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestFetchCSV_TransportErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	defer srv.Close()

	_, err := NewFetcher(600).FetchCSV(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchCSV_RejectsNonHTTP(t *testing.T) {
	_, err := NewFetcher(0).FetchCSV(context.Background(), "file:///etc/passwd")
	assert.True(t, errors.Is(err, ErrParse))
}
