package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestOpenAI(name, url string, client *http.Client) *OpenAI {
	return &OpenAI{
		name:    name,
		apiKey:  "test-key",
		model:   "gpt-4o",
		baseURL: url,
		client:  client,
	}
}

func TestOpenAI_Review(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or wrong Authorization header")
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Path = %q, want /chat/completions", r.URL.Path)
		}

		var body openaiRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Model != "gpt-4o" {
			t.Errorf("Model = %q, want gpt-4o", body.Model)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
			t.Errorf("Messages = %+v, want system then user", body.Messages)
		}
		if body.Messages[1].Content != "review me" {
			t.Errorf("user content = %q", body.Messages[1].Content)
		}

		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "## Looks good"}},
				{Message: openaiMessage{Role: "assistant", Content: "ignored"}},
			},
			Usage: openaiUsage{TotalTokens: 50},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())

	resp, err := o.Review(context.Background(), ReviewRequest{
		SystemPrompt: "be a reviewer",
		UserPrompt:   "review me",
	})
	if err != nil {
		t.Fatalf("Review error: %v", err)
	}
	if resp.Content != "## Looks good" {
		t.Errorf("Content = %q, want first choice", resp.Content)
	}
	if resp.TokensUsed != 50 {
		t.Errorf("TokensUsed = %d, want 50", resp.TokensUsed)
	}
}

func TestOpenAI_OmitsZeroMaxTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		json.NewDecoder(r.Body).Decode(&raw)
		if _, ok := raw["max_tokens"]; ok {
			t.Error("max_tokens should be omitted when zero")
		}
		if _, ok := raw["temperature"]; ok {
			t.Error("temperature should be omitted when zero")
		}
		json.NewEncoder(w).Encode(openaiResponse{
			Choices: []openaiChoice{{Message: openaiMessage{Content: "ok"}}},
		})
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())
	if _, err := o.Review(context.Background(), ReviewRequest{SystemPrompt: "s", UserPrompt: "u"}); err != nil {
		t.Fatalf("Review error: %v", err)
	}
}

func TestOpenAI_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: ""}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())

	_, err := o.Review(context.Background(), ReviewRequest{
		SystemPrompt: "test",
		UserPrompt:   "test",
	})
	if err == nil {
		t.Error("Expected error for empty content")
	}
}

func TestOpenAI_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openaiResponse{Choices: []openaiChoice{}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())

	_, err := o.Review(context.Background(), ReviewRequest{
		SystemPrompt: "test",
		UserPrompt:   "test",
	})
	if err == nil {
		t.Fatal("Expected error for no choices")
	}
	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("error = %q", err)
	}
}

func TestOpenAI_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [`))
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())
	_, err := o.Review(context.Background(), ReviewRequest{SystemPrompt: "s", UserPrompt: "u"})
	if err == nil || !strings.Contains(err.Error(), "parsing response") {
		t.Errorf("error = %v, want parsing error", err)
	}
}

func TestOpenAI_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())
	o.apiKey = "bad-key"

	_, err := o.Review(context.Background(), ReviewRequest{
		SystemPrompt: "test",
		UserPrompt:   "test",
	})
	if err == nil {
		t.Fatal("Expected auth error")
	}
	if !IsAuthError(err) {
		t.Errorf("Expected auth error, got: %v", err)
	}
}

func TestOpenAI_ServerErrorNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(503)
		w.Write([]byte(`{"error":"service unavailable"}`))
	}))
	defer server.Close()

	o := newTestOpenAI(OpenAIName, server.URL, server.Client())

	_, err := o.Review(context.Background(), ReviewRequest{
		SystemPrompt: "test",
		UserPrompt:   "test",
	})
	if err == nil {
		t.Fatal("Expected error for 503")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", apiErr.StatusCode)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestErrorMessages(t *testing.T) {
	ae := &authError{message: "bad key"}
	if ae.Error() != "authentication error: bad key" {
		t.Errorf("authError.Error() = %q", ae.Error())
	}

	apiErr := &APIError{StatusCode: 500, Body: "oops"}
	if apiErr.Error() != "API error (status 500): oops" {
		t.Errorf("APIError.Error() = %q", apiErr.Error())
	}
}

func TestIsAuthError(t *testing.T) {
	if IsAuthError(nil) {
		t.Error("nil should not be auth error")
	}
	if IsAuthError(&APIError{StatusCode: 500}) {
		t.Error("APIError should not be auth error")
	}
	if !IsAuthError(&authError{message: "test"}) {
		t.Error("authError should be auth error")
	}
}
