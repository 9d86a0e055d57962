package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"actionsense/pkg/gemini"
)

func candidateBody(text string) []byte {
	body, _ := json.Marshal(gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}},
		}},
	})
	return body
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL, Model: "test-model"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Errorf("expected error for missing api key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q", client.Model())
	}
}

func TestClient_GenerateContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(candidateBody("mocked response string"))
	})

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "Hello world"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected error on 500")
		}
	})
}

func TestClient_ExtractActionItems(t *testing.T) {
	var gotReq gemini.GenerateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write(candidateBody("```json\n{\"actionItems\":[{\"id\":1,\"text\":\"보고서 제출\",\"assignedTo\":\"민수\",\"dueDate\":\"내일\"}]}\n```"))
	})

	items, err := client.ExtractActionItems(context.Background(), "민수 내일까지 보고서 제출")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Text != "보고서 제출" || *items[0].AssignedTo != "민수" || *items[0].DueDate != "내일" {
		t.Errorf("unexpected item: %+v", items[0])
	}

	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != gemini.ActionItemSystemPrompt {
		t.Errorf("system prompt not sent")
	}
	if !strings.Contains(gotReq.Contents[0].Parts[0].Text, "민수 내일까지 보고서 제출") {
		t.Errorf("user text not sent")
	}
}

func TestClient_ExtractActionItemsEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := client.ExtractActionItems(context.Background(), "x"); err == nil {
		t.Errorf("expected error for empty response")
	}
}
