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

func TestTemplatesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/templates", r.URL.Path)

		response := novita.TemplateList{
			Templates: []novita.Template{
				{ID: "tmpl-1", Name: "pytorch-base", ImageURL: "pytorch:latest"},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := templates.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tmpl-1", list[0].ID)
}

func TestTemplatesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/template", r.URL.Path)
		assert.Equal(t, "tmpl-1", r.URL.Query().Get("template_id"))

		_ = json.NewEncoder(w).Encode(novita.Template{ID: "tmpl-1", Name: "pytorch-base"})
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL, "test-key"))

	template, err := templates.Get(context.Background(), "tmpl-1")
	require.NoError(t, err)
	assert.Equal(t, "pytorch-base", template.Name)
}

func TestTemplatesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/template/create", r.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "pytorch-base", body["name"])
		assert.Equal(t, "inst-1", body["instance_id"])

		_ = json.NewEncoder(w).Encode(novita.Template{ID: "tmpl-2", Name: "pytorch-base"})
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL, "test-key"))

	template, err := templates.Create(context.Background(), &novita.CreateTemplateRequest{
		Name:       "pytorch-base",
		InstanceID: "inst-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tmpl-2", template.ID)
}

func TestTemplatesClient_Create_NoSource(t *testing.T) {
	templates := NewTemplatesClient(internalhttp.NewClient("https://api.example.com", "test-key"))

	_, err := templates.Create(context.Background(), &novita.CreateTemplateRequest{Name: "empty"})
	require.Error(t, err)
	assert.True(t, novita.IsValidation(err))
}

func TestTemplatesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/template/delete", r.URL.Path)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "tmpl-1", body["template_id"])

		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	templates := NewTemplatesClient(internalhttp.NewClient(server.URL, "test-key"))
	require.NoError(t, templates.Delete(context.Background(), "tmpl-1"))
}
