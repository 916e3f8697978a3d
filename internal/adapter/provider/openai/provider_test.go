package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	})
	return string(b)
}

func newChatServer(t *testing.T, content string, check func(body map[string]any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if check != nil {
			check(body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatResponse(content)))
	}))
}

func TestProvider_FlowerName(t *testing.T) {
	t.Parallel()

	srv := newChatServer(t, "\"Moonlit Veil\"", func(body map[string]any) {
		if body["temperature"] != 0.9 {
			t.Errorf("temperature = %v, want 0.9", body["temperature"])
		}
		if _, ok := body["response_format"]; ok {
			t.Error("name request should not force JSON mode")
		}
	})
	defer srv.Close()

	p := NewProviderWithURL("test-key", "", srv.URL+"/v1", newTestLogger())
	name, err := p.FlowerName(context.Background(), "moonlit lily")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Moonlit Veil" {
		t.Errorf("name = %q, want %q", name, "Moonlit Veil")
	}
}

func TestProvider_FlowerDetails(t *testing.T) {
	t.Parallel()

	content := `{"meaning":"Hope","properties":"Hardy","origins":"Andes","detailedDescription":"Blue","continent":"South America"}`
	srv := newChatServer(t, content, func(body map[string]any) {
		rf, _ := body["response_format"].(map[string]any)
		if rf["type"] != "json_object" {
			t.Errorf("response_format = %v", body["response_format"])
		}
		msgs, _ := body["messages"].([]any)
		if len(msgs) != 2 {
			t.Fatalf("messages = %d, want 2", len(msgs))
		}
		user, _ := msgs[1].(map[string]any)
		if !strings.Contains(user["content"].(string), "currently spring") {
			t.Errorf("user prompt missing season: %v", user["content"])
		}
	})
	defer srv.Close()

	p := NewProviderWithURL("test-key", "", srv.URL+"/v1", newTestLogger())
	d, err := p.FlowerDetails(context.Background(), provider.DetailsRequest{
		Name:       "Andean Blue",
		Descriptor: "blue mountain flower",
		Season:     domain.SeasonSpring,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Origins != "Andes" || d.Continent != domain.ContinentSouthAmerica {
		t.Errorf("unexpected details: %+v", d)
	}
}

func TestProvider_GenerateImage(t *testing.T) {
	t.Parallel()

	png := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/images/generations" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["model"] != "dall-e-3" || body["size"] != "1024x1024" {
			t.Errorf("unexpected body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString(png)}},
		})
	}))
	defer srv.Close()

	p := NewProviderWithURL("test-key", "", srv.URL+"/v1", newTestLogger())
	res, err := p.GenerateImage(context.Background(), provider.ImageRequest{Descriptor: "wild rose"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Data) != string(png) {
		t.Errorf("Data = %v", res.Data)
	}
	if !strings.Contains(res.Prompt, "wild rose") {
		t.Errorf("Prompt = %q", res.Prompt)
	}
}

func TestProvider_MissingKey(t *testing.T) {
	t.Parallel()

	p := NewProvider("", "", newTestLogger())

	if _, err := p.FlowerName(context.Background(), "rose"); !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("FlowerName error = %v, want ErrMissingAPIKey", err)
	}
	if _, err := p.GenerateImage(context.Background(), provider.ImageRequest{}); !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("GenerateImage error = %v, want ErrMissingAPIKey", err)
	}
}

func TestProvider_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"bad","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL("test-key", "", srv.URL+"/v1", newTestLogger())
	if _, err := p.NotificationCopy(context.Background(), provider.CopyRequest{Kind: domain.NotificationDailyReveal}); err == nil {
		t.Fatal("expected error")
	}
}
