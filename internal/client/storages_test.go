package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

func TestStoragesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/networkstorages/list", r.URL.Path)

		response := novita.StorageList{
			Storages: []novita.Storage{
				{ID: "stor-1", Name: "datasets", Size: 100},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	storages := NewStoragesClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := storages.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "stor-1", list[0].ID)
	assert.Equal(t, 100, list[0].Size)
}

func TestStoragesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/networkstorage/create", r.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "datasets", body["name"])
		assert.Equal(t, float64(100), body["size"])

		_ = json.NewEncoder(w).Encode(novita.Storage{ID: "stor-2", Name: "datasets", Size: 100})
	}))
	defer server.Close()

	storages := NewStoragesClient(internalhttp.NewClient(server.URL, "test-key"))

	storage, err := storages.Create(context.Background(), &novita.CreateStorageRequest{
		Name:      "datasets",
		Size:      100,
		ClusterID: "cluster-eu",
	})
	require.NoError(t, err)
	assert.Equal(t, "stor-2", storage.ID)
}

func TestStoragesClient_Create_InvalidSize(t *testing.T) {
	storages := NewStoragesClient(internalhttp.NewClient("https://api.example.com", "test-key"))

	_, err := storages.Create(context.Background(), &novita.CreateStorageRequest{
		Name: "datasets",
		Size: 0,
	})
	require.Error(t, err)
	assert.True(t, novita.IsValidation(err))
}

func TestStoragesClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/networkstorage/update", r.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "stor-1", body["storage_id"])

		_ = json.NewEncoder(w).Encode(novita.Storage{ID: "stor-1", Size: 200})
	}))
	defer server.Close()

	storages := NewStoragesClient(internalhttp.NewClient(server.URL, "test-key"))

	storage, err := storages.Update(context.Background(), &novita.UpdateStorageRequest{
		StorageID: "stor-1",
		Size:      200,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, storage.Size)
}

func TestStoragesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/networkstorage/delete", r.URL.Path)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "stor-1", body["storage_id"])

		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	storages := NewStoragesClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, storages.Delete(context.Background(), "stor-1"))
}
