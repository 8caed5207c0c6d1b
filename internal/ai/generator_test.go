package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeOpenAI(t *testing.T, reply string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req openAIRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, 0.7, req.Temperature)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": reply}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate_OpenAIFencedFAQ(t *testing.T) {
	var items []string
	for i := 1; i <= 5; i++ {
		items = append(items, fmt.Sprintf(`{"question":"Q%d","answer":"A%d"}`, i, i))
	}
	reply := "```json\n[" + strings.Join(items, ",") + "]\n```"

	var calls atomic.Int32
	srv := fakeOpenAI(t, reply, &calls)
	gen := NewGenerator(Config{OpenAIBaseURL: srv.URL})

	settings := content.AISettings{Provider: "openai", OpenAIKey: "sk-test", Model: "gpt-4o-mini", Language: "en"}
	records, err := gen.Generate(context.Background(), settings, importer.KindFAQ, "mattress", 5)
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, "Q1", records[0].String("question"))
	assert.Equal(t, "A5", records[4].String("answer"))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_MissingCredentialMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	srv := fakeOpenAI(t, "[]", &calls)
	gen := NewGenerator(Config{OpenAIBaseURL: srv.URL, GeminiBaseURL: srv.URL})

	for _, provider := range []string{"openai", "gemini", "ollama", ""} {
		_, err := gen.Generate(context.Background(), content.AISettings{Provider: provider}, importer.KindFAQ, "pillows", 3)
		assert.True(t, errors.Is(err, ErrConfigMissing), "provider %q: %v", provider, err)
	}
	assert.Zero(t, calls.Load())
}

func TestGenerate_UnparseableReply(t *testing.T) {
	var calls atomic.Int32
	srv := fakeOpenAI(t, "Here you go: lots of products!", &calls)
	gen := NewGenerator(Config{OpenAIBaseURL: srv.URL})

	_, err := gen.Generate(context.Background(), content.AISettings{OpenAIKey: "sk-test"}, importer.KindProducts, "desks", 3)

	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, int32(1), calls.Load(), "no retry on a bad reply")
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()
	gen := NewGenerator(Config{OpenAIBaseURL: srv.URL})

	_, err := gen.Generate(context.Background(), content.AISettings{OpenAIKey: "sk-test"}, importer.KindFAQ, "x", 1)

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestGenerate_UnsupportedKind(t *testing.T) {
	gen := NewGenerator(Config{})

	_, err := gen.Generate(context.Background(), content.AISettings{OpenAIKey: "sk-test"}, importer.Kind("reviews"), "x", 1)

	assert.True(t, errors.Is(err, ErrUnsupportedKind))
}

func TestGenerate_Ollama(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var req ollamaRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "mistral:7b", req.Model, "openai default model is not sent to ollama")
		assert.False(t, req.Stream)
		assert.Contains(t, req.System, "Respond in Japanese")

		json.NewEncoder(w).Encode(ollamaResponse{Model: req.Model, Response: `[{"type":"😴 Side Sleeper","product":"Helix","benefit":"✓ Relief"}]`, Done: true})
	}))
	defer srv.Close()
	gen := NewGenerator(Config{})

	settings := content.AISettings{Provider: "ollama", OllamaURL: srv.URL, Model: content.DefaultAIModel, Language: "ja"}
	records, err := gen.Generate(context.Background(), settings, importer.KindComparison, "mattress", 1)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Helix", records[0].String("product"))
}

func TestUserPrompt_FieldLists(t *testing.T) {
	prompt, err := UserPrompt(importer.KindProducts, 3, "standing desks")
	require.NoError(t, err)
	assert.Contains(t, prompt, `Generate 3 product reviews for "standing desks"`)
	assert.Contains(t, prompt, "rank (number 1-3)")
	assert.Contains(t, prompt, "https://picsum.photos/400/300?random=X")

	prompt, err = UserPrompt(importer.KindTestimonials, 2, "pillows")
	require.NoError(t, err)
	assert.Contains(t, prompt, "avatar (single emoji")
}

func TestModelFor(t *testing.T) {
	assert.Equal(t, "gpt-4o", modelFor("openai", "gpt-4o"))
	assert.Equal(t, content.DefaultAIModel, modelFor("openai", ""))
	assert.Equal(t, "gemini-2.0-flash-lite", modelFor("gemini", content.DefaultAIModel))
	assert.Equal(t, "llama3", modelFor("ollama", "llama3"))
}
