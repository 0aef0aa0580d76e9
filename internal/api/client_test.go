package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/habitrow/habitctl/internal/config"
)

func TestNewClientRequiresToken(t *testing.T) {
	t.Parallel()

	_, err := NewClient(config.APIConfig{})
	if err == nil {
		t.Fatal("expected token error")
	}
}

func TestCreatePageSendsRequest(t *testing.T) {
	t.Parallel()

	var gotMethod string
	var gotPath string
	var gotAuth string
	var gotVersion string
	var gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		gotContentType = r.Header.Get("Content-Type")

		defer func() { _ = r.Body.Close() }()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc123","url":"https://www.notion.so/abc123"}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.APIConfig{
		BaseURL:       srv.URL,
		NotionVersion: "2022-06-28",
		Token:         "secret-token",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	payload := map[string]any{
		"parent": map[string]any{"database_id": "db-1"},
	}

	page, err := client.CreatePage(context.Background(), payload)
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method mismatch: got %s", gotMethod)
	}
	if gotPath != "/pages" {
		t.Fatalf("path mismatch: got %s", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("auth mismatch: got %s", gotAuth)
	}
	if gotVersion != "2022-06-28" {
		t.Fatalf("notion-version mismatch: got %s", gotVersion)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content-type mismatch: got %s", gotContentType)
	}

	parent, ok := gotBody["parent"].(map[string]any)
	if !ok || parent["database_id"] != "db-1" {
		t.Fatalf("parent mismatch: %v", gotBody["parent"])
	}

	if page.ID != "abc123" {
		t.Fatalf("page ID mismatch: got %q", page.ID)
	}
	if page.URL != "https://www.notion.so/abc123" {
		t.Fatalf("page URL mismatch: got %q", page.URL)
	}
}

func TestCreatePageReturnsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"object":"error","status":400,"message":"bad request"}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.APIConfig{BaseURL: srv.URL, Token: "secret-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.CreatePage(context.Background(), map[string]any{"parent": map[string]any{}})
	if err == nil {
		t.Fatal("expected API error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status mismatch: got %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status in message, got: %v", err)
	}
	if !strings.Contains(err.Error(), "bad request") {
		t.Fatalf("expected upstream message, got: %v", err)
	}
}

func TestCreatePageRequiresPageIDInResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"page"}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.APIConfig{BaseURL: srv.URL, Token: "secret-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.CreatePage(context.Background(), map[string]any{"parent": map[string]any{}})
	if err == nil {
		t.Fatal("expected missing page ID error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "no page id") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryDatabaseSendsQuery(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		defer func() { _ = r.Body.Close() }()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":"prior-week-id"}],"has_more":false}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.APIConfig{BaseURL: srv.URL, Token: "secret-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	query := map[string]any{
		"page_size": 1,
		"sorts": []map[string]any{
			{"property": "Date", "direction": "descending"},
		},
	}

	resp, err := client.QueryDatabase(context.Background(), "db-weekly", query)
	if err != nil {
		t.Fatalf("query database: %v", err)
	}

	if gotPath != "/databases/db-weekly/query" {
		t.Fatalf("path mismatch: got %s", gotPath)
	}
	if gotBody["page_size"] != float64(1) {
		t.Fatalf("page_size mismatch: %v", gotBody["page_size"])
	}

	if len(resp.Results) != 1 {
		t.Fatalf("results mismatch: got %d", len(resp.Results))
	}
	if resp.Results[0].ID != "prior-week-id" {
		t.Fatalf("result ID mismatch: got %q", resp.Results[0].ID)
	}
}

func TestQueryDatabaseRequiresDatabaseID(t *testing.T) {
	t.Parallel()

	client, err := NewClient(config.APIConfig{BaseURL: "https://api.example.com/v1", Token: "secret-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.QueryDatabase(context.Background(), "  ", nil); err == nil {
		t.Fatal("expected database ID error")
	}
}

func TestVerifyTokenSendsGetRequest(t *testing.T) {
	t.Parallel()

	var gotMethod string
	var gotPath string
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"user","id":"user-id"}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.APIConfig{BaseURL: srv.URL, Token: "secret-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := client.VerifyToken(context.Background()); err != nil {
		t.Fatalf("verify token: %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Fatalf("method mismatch: got %s", gotMethod)
	}
	if gotPath != "/users/me" {
		t.Fatalf("path mismatch: got %s", gotPath)
	}
	if gotContentType != "" {
		t.Fatalf("content-type should be empty for GET, got %q", gotContentType)
	}
}

func TestVerifyTokenRequiresUserIDInResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"user"}`))
	}))
	defer srv.Close()

	client, err := NewClient(config.APIConfig{BaseURL: srv.URL, Token: "secret-token"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = client.VerifyToken(context.Background())
	if err == nil {
		t.Fatal("expected empty user ID error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "empty user id") {
		t.Fatalf("unexpected error: %v", err)
	}
}
