package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognitionHTTPFacade_Recognize(t *testing.T) {
	ctx := context.Background()

	t.Run("returns first candidate text", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"here you go: {\"make\":\"Toyota\"}"}]}}]}`))
		}))
		defer srv.Close()

		facade := NewRecognitionHTTPFacade(srv.Client(), srv.URL, "test-key")
		text, err := facade.Recognize(ctx, "aW1hZ2U=")

		assert.NoError(t, err)
		assert.Equal(t, `here you go: {"make":"Toyota"}`, text)

		// Request carries the prompt and the inline image payload.
		contents := gotBody["contents"].([]any)
		parts := contents[0].(map[string]any)["parts"].([]any)
		assert.Len(t, parts, 2)
		assert.Contains(t, parts[0].(map[string]any)["text"], "Analyze this vehicle image")
		inline := parts[1].(map[string]any)["inline_data"].(map[string]any)
		assert.Equal(t, "image/jpeg", inline["mime_type"])
		assert.Equal(t, "aW1hZ2U=", inline["data"])
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		facade := NewRecognitionHTTPFacade(srv.Client(), srv.URL, "test-key")
		_, err := facade.Recognize(ctx, "aW1hZ2U=")
		assert.Error(t, err)
	})

	t.Run("empty candidates is ErrNoContent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		facade := NewRecognitionHTTPFacade(srv.Client(), srv.URL, "test-key")
		_, err := facade.Recognize(ctx, "aW1hZ2U=")
		assert.ErrorIs(t, err, ErrNoContent)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		facade := NewRecognitionHTTPFacade(nil, "http://127.0.0.1:0", "test-key")
		_, err := facade.Recognize(ctx, "aW1hZ2U=")
		assert.Error(t, err)
	})
}
