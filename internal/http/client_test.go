package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/gpu-instance/openapi/v1/gpu/instance", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "inst-1", "status": "running"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/gpu-instance/openapi/v1/gpu/instance",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "inst-1", result["id"])
		assert.Equal(t, "running", result["status"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "pageNum=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/gpu-instance/openapi/v1/gpu/instances",
			Query:  url.Values{"pageNum": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "my-instance", body["name"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "POST",
			Path:   "/gpu-instance/openapi/v1/gpu/instance/create",
			Body:   map[string]string{"name": "my-instance"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("authentication error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"code":    16,
				"message": "invalid api key",
			})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "bad-key")

		resp, err := client.Get(context.Background(), "/gpu-instance/openapi/v1/gpu/instances", nil)
		require.Error(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.True(t, novita.IsAuthentication(err))
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("rate limit error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"message": "rate limit exceeded",
			})
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		_, err := client.Get(context.Background(), "/gpu-instance/openapi/v1/gpu/instances", nil)
		require.Error(t, err)
		assert.True(t, novita.IsRateLimit(err))
	})

	t.Run("error with unparseable body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		_, err := client.Get(context.Background(), "/gpu-instance/openapi/v1/gpu/instance", nil)
		require.Error(t, err)
		assert.True(t, novita.IsNotFound(err))

		var apiErr *novita.NotFoundError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, []byte("<html>not json</html>"), apiErr.Body)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/gpu-instance/openapi/v1/gpu/instances",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := internalhttp.NewClient(server.URL, "test-key", internalhttp.WithLogger(logger), internalhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/gpu-instance/openapi/v1/gpu/instances", nil)
		require.NoError(t, err)

		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("timeout maps to TimeoutError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key", internalhttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/gpu-instance/openapi/v1/gpu/instances", nil)
		require.Error(t, err)
		assert.True(t, novita.IsTimeout(err))
	})

	t.Run("context deadline maps to TimeoutError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/gpu-instance/openapi/v1/gpu/instances", nil)
		require.Error(t, err)
		assert.True(t, novita.IsTimeout(err))
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*internalhttp.Client, context.Context) (*internalhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := internalhttp.NewClient(server.URL, "test-key")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_Close(t *testing.T) {
	t.Parallel()
	t.Run("requests fail after close without network access", func(t *testing.T) {
		t.Parallel()

		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		_, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)

		require.NoError(t, client.Close())

		_, err = client.Get(context.Background(), "/test", nil)
		require.ErrorIs(t, err, novita.ErrClientClosed)
		assert.Equal(t, 1, requests)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		client := internalhttp.NewClient("https://api.example.com", "test-key")
		require.NoError(t, client.Close())
		require.NoError(t, client.Close())
	})

	t.Run("missing api key sends no authorization header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		_, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
	})
}
