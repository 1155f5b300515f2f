package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusBadRequest},
		{"wrong scheme", "Bearer " + testAPIToken, http.StatusBadRequest},
		{"bare token", testAPIToken, http.StatusBadRequest},
		{"wrong secret", "token not-the-secret", http.StatusUnauthorized},
		{"correct secret", "token " + testAPIToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/users", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGate_CoversPanicEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/panic", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
