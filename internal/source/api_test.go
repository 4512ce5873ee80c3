package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPISourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"external_id":"E-2001","first_name":"Mock","hourly_rate":25.0,"active":true},
			{"external_id":"E-2002","first_name":"Other","hourly_rate":"18.25","active":"false"}
		]`))
	}))
	defer srv.Close()

	rows, err := NewAPISource(srv.URL).Fetch(context.Background(), KindEmployees)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "E-2001", rows[0]["external_id"])
	assert.Equal(t, 25.0, rows[0]["hourly_rate"], "JSON numbers stay native until validation")
	assert.Equal(t, true, rows[0]["active"])
	assert.Equal(t, "18.25", rows[1]["hourly_rate"])
}

func TestAPISourceShiftPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/shifts", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rows, err := NewAPISource(srv.URL + "/").Fetch(context.Background(), KindShifts)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestAPISourceNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAPISource(srv.URL).Fetch(context.Background(), KindEmployees)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "502")
}

func TestAPISourceUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // free the port, then dial it

	_, err := NewAPISource(srv.URL).Fetch(context.Background(), KindEmployees)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAPISourceMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := NewAPISource(srv.URL).Fetch(context.Background(), KindShifts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
