package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/alunos/1" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"nome":"Ana Silva"}`))
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	resp := client.Get(context.Background(), "/alunos/1")

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	var aluno struct {
		Nome string `json:"nome"`
	}
	if err := resp.Decode(&aluno); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if aluno.Nome != "Ana Silva" {
		t.Errorf("nome: got %q", aluno.Nome)
	}
}

func TestNon2xxBecomesFailureNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Aluno não encontrado",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp := client.Get(context.Background(), "/alunos/999")

	if resp.Success {
		t.Fatal("404 must not be a success")
	}
	if resp.Status != http.StatusNotFound {
		t.Errorf("status: got %d", resp.Status)
	}
	if resp.Error != "Aluno não encontrado" {
		t.Errorf("error: got %q", resp.Error)
	}
}

func TestTransportFailureBecomesFailureNotError(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL)
	resp := client.Get(context.Background(), "/alunos")

	if resp.Success {
		t.Fatal("transport failure must not be a success")
	}
	if resp.Status != 0 {
		t.Errorf("status should be 0 when nothing was received, got %d", resp.Status)
	}
	if resp.Error == "" {
		t.Error("error description missing")
	}
}

func TestGetIsCachedUntilMutation(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt32(&hits, 1)
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	client.Get(ctx, "/alunos?page=1")
	client.Get(ctx, "/alunos?page=1")
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("repeated read should be served from cache, got %d hits", n)
	}

	// Different query string is a different cache entry
	client.Get(ctx, "/alunos?page=2")
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("distinct endpoint should miss the cache, got %d hits", n)
	}

	// Any mutation drops the whole cache
	client.Post(ctx, "/alunos", map[string]string{"nome": "x"})
	client.Get(ctx, "/alunos?page=1")
	if n := atomic.LoadInt32(&hits); n != 3 {
		t.Fatalf("read after mutation should refetch, got %d hits", n)
	}
}

func TestDeleteInvalidatesCache(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt32(&hits, 1)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	client.Get(ctx, "/alunos/1")
	client.Delete(ctx, "/alunos/1")
	client.Get(ctx, "/alunos/1")

	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Errorf("expected refetch after delete, got %d hits", n)
	}
}

func TestFailedGetIsNotCached(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	if resp := client.Get(ctx, "/alunos"); resp.Success {
		t.Fatal("first call should fail")
	}
	if resp := client.Get(ctx, "/alunos"); !resp.Success {
		t.Fatal("second call should retry, not serve the failure from cache")
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("body decode: %v", err)
		}
		if body["nome"] != "Ana Silva" {
			t.Errorf("body: got %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp := client.Post(context.Background(), "/alunos", map[string]string{"nome": "Ana Silva"})
	if !resp.Success || resp.Status != http.StatusCreated {
		t.Errorf("unexpected response: %+v", resp)
	}
}
