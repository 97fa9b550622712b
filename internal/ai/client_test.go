package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourhome24/expose/internal/config"
)

func testModelConfig(baseURL string) config.ModelConfig {
	return config.ModelConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Name:    "test-model",
	}
}

// newTestClient points a Client at a stub chat-completion server and counts
// the requests it receives.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(testModelConfig(server.URL), server.Client())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, &calls
}

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}}},
	}
}

func TestNewClient_MissingConfig(t *testing.T) {
	_, err := NewClient(config.ModelConfig{APIKey: "k", Name: "m"}, nil)
	if err == nil {
		t.Fatal("expected error for missing base URL")
	}
	var missing *config.MissingVarError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVarError, got %T", err)
	}
	if missing.Variable != "MODEL_BASE_URL" {
		t.Errorf("expected MODEL_BASE_URL, got %s", missing.Variable)
	}
}

func TestGenerate_TrimsContent(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("  Eine schöne Wohnung.  \n"))
	})

	text, err := client.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Eine schöne Wohnung." {
		t.Errorf("expected trimmed content, got %q", text)
	}
	if *calls != 1 {
		t.Errorf("expected exactly 1 request, got %d", *calls)
	}
}

func TestGenerate_SendsFixedDecodingConfig(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("ok"))
	})

	if _, err := client.Generate(context.Background(), "sys", "usr"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if body["model"] != "test-model" {
		t.Errorf("expected model test-model, got %v", body["model"])
	}
	if body["temperature"] != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", body["temperature"])
	}
	if body["max_tokens"] != float64(400) {
		t.Errorf("expected max_tokens 400, got %v", body["max_tokens"])
	}
	messages, _ := body["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected exactly 2 messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	second, _ := messages[1].(map[string]any)
	if first["role"] != "system" || second["role"] != "user" {
		t.Errorf("expected system+user messages, got %v and %v", first["role"], second["role"])
	}
}

func TestGenerate_NonSuccessStatus(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached","type":"rate_limit"}}`))
	})

	_, err := client.Generate(context.Background(), "sys", "usr")
	if err == nil {
		t.Fatal("expected upstream error")
	}
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", upstream.StatusCode)
	}
	if *calls != 1 {
		t.Errorf("expected a single attempt, got %d", *calls)
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	})

	text, err := client.Generate(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("expected graceful empty result, got %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestGenerate_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{`))
	})

	text, err := client.Generate(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("malformed body must degrade to empty, got %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(testModelConfig(server.URL), server.Client())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	server.Close()

	_, err = client.Generate(context.Background(), "sys", "usr")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError for transport failure, got %T: %v", err, err)
	}
	if upstream.StatusCode != 0 {
		t.Errorf("expected no status for transport failure, got %d", upstream.StatusCode)
	}
}
