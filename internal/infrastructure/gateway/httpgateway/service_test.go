package httpgateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/otcdex-network/otcdex-daemon/internal/infrastructure/gateway/httpgateway"
)

func TestTransferFrom(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		},
	))
	defer server.Close()

	gateway, err := httpgateway.NewService(server.URL, 5*time.Second)
	require.NoError(t, err)

	err = gateway.TransferFrom(
		context.Background(), "0xf00", "0xaaa", "0xbbb", 1000,
	)
	require.NoError(t, err)
	require.Equal(t, "/contracts/0xf00/transfer-from", gotPath)
	require.Equal(t, "0xaaa", gotBody["from"])
	require.Equal(t, "0xbbb", gotBody["to"])
	require.EqualValues(t, 1000, gotBody["amountOrId"])
}

func TestFailingTransferFrom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "insufficient balance", http.StatusUnprocessableEntity)
		},
	))
	defer server.Close()

	gateway, err := httpgateway.NewService(server.URL, 5*time.Second)
	require.NoError(t, err)

	err = gateway.TransferFrom(
		context.Background(), "0xf00", "0xaaa", "0xbbb", 1000,
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient balance")
}

func TestFailingNewService(t *testing.T) {
	_, err := httpgateway.NewService("", 5*time.Second)
	require.Error(t, err)
}
