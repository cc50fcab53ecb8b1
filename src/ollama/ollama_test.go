package ollama_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"docgpt/src/ollama"
)

func TestGenerateAccumulatesStream(t *testing.T) {
	var gotReq ollama.GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		fmt.Fprintln(w, `{"model":"mistral","response":"Hel","done":false}`)
		fmt.Fprintln(w, `{"model":"mistral","response":"lo there","done":true}`)
	}))
	defer srv.Close()

	client := ollama.NewClient(srv.URL+"/api", srv.Client())
	got, err := client.Generate(context.Background(), "mistral", "be brief", "hi", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello there" {
		t.Errorf("Generate = %q, want %q", got, "Hello there")
	}
	if gotReq.Model != "mistral" || gotReq.Prompt != "hi" || gotReq.System != "be brief" {
		t.Errorf("request = %+v, want model/prompt/system set", gotReq)
	}
	if !gotReq.Stream {
		t.Error("request should ask for a streamed response")
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := ollama.NewClient(srv.URL+"/api", srv.Client())
	if _, err := client.Generate(context.Background(), "absent", "", "hi", nil); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestGenerateStreamWithoutDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"response":"partial","done":false}`)
	}))
	defer srv.Close()

	client := ollama.NewClient(srv.URL+"/api", srv.Client())
	if _, err := client.Generate(context.Background(), "mistral", "", "hi", nil); err == nil {
		t.Fatal("expected an error when the stream never completes")
	}
}

func TestGenerateConnectionRefused(t *testing.T) {
	client := ollama.NewClient("http://127.0.0.1:1/api", &http.Client{})
	if _, err := client.Generate(context.Background(), "mistral", "", "hi", nil); err == nil {
		t.Fatal("expected an error when the endpoint is unreachable")
	}
}

func TestProviderPing(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollama.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Prompt
		fmt.Fprintln(w, `{"response":"Hi!","done":true}`)
	}))
	defer srv.Close()

	provider := ollama.NewProvider(ollama.NewClient(srv.URL+"/api", srv.Client()), "mistral")
	if err := provider.Ping(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotPrompt != "Hello" {
		t.Errorf("probe prompt = %q, want %q", gotPrompt, "Hello")
	}

	bad := ollama.NewProvider(ollama.NewClient("http://127.0.0.1:1/api", &http.Client{}), "mistral")
	if err := bad.Ping(context.Background()); err == nil {
		t.Fatal("expected Ping to fail against an unreachable endpoint")
	}
}

func TestProviderReasoningOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollama.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Options["temperature"] == nil {
			t.Error("expected temperature option to be set")
		}
		fmt.Fprintln(w, `{"response":"ok","done":true}`)
	}))
	defer srv.Close()

	provider := ollama.NewProvider(ollama.NewClient(srv.URL+"/api", srv.Client()), "mistral")
	got, err := provider.Reasoning(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ok" {
		t.Errorf("Reasoning = %q, want %q", got, "ok")
	}
}
