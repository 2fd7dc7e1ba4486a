package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/config"
	"locator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCMSTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Webflow: &config.WebflowConfig{APIBaseURL: baseURL},
	}
}

func TestCMSClient_ListCollectionItems(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"id":"item-1","fieldData":{"name":"Downtown","address":"1 Main St","latitude":40.7128,"longitude":-74.006,"phone":"555-0100"}},
			{"id":"item-2","fieldData":{"name":"Warehouse","address":"2 Dock Rd"}}
		]}`))
	}))
	defer server.Close()

	client := NewCMSClient(newCMSTestConfig(server.URL), discardLogger())

	locations, err := client.ListCollectionItems(context.Background(), "wf-token", "coll-123")
	require.NoError(t, err)
	require.Len(t, locations, 2)

	assert.Equal(t, "Bearer wf-token", gotAuth)
	assert.Equal(t, "/v2/collections/coll-123/items", gotPath)

	assert.Equal(t, "Downtown", locations[0].Name)
	require.True(t, locations[0].HasCoordinates())
	assert.InDelta(t, 40.7128, *locations[0].Latitude, 1e-9)

	// Records without geocoded fields keep nil coordinates.
	assert.Equal(t, "Warehouse", locations[1].Name)
	assert.False(t, locations[1].HasCoordinates())
}

func TestCMSClient_ListCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/sites/site-abc/collections", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"collections":[{"id":"coll-1","displayName":"Stores","slug":"stores"}]}`))
	}))
	defer server.Close()

	client := NewCMSClient(newCMSTestConfig(server.URL), discardLogger())

	collections, err := client.ListCollections(context.Background(), "wf-token", "site-abc")
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "Stores", collections[0].DisplayName)
	assert.Equal(t, "stores", collections[0].Slug)
}

func TestCMSClient_UpstreamStatusPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewCMSClient(newCMSTestConfig(server.URL), discardLogger())

	_, err := client.ListCollectionItems(context.Background(), "wf-token", "coll-123")

	var upstreamErr *service.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, "webflow", upstreamErr.API)
}
