package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PortellaAlly/bestprice/internal/api"
	"github.com/PortellaAlly/bestprice/internal/catalog"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/products/search", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "mouse sem fio", body["query"])

		resp := catalog.SearchResponse{
			Success: true,
			Count:   2,
			Breakdown: &catalog.Breakdown{
				MercadoLivre: 1,
				Amazon:       1,
			},
			Products: []catalog.Product{
				{ID: 7, Name: "Mouse A", Price: 99.9, Store: "Amazon", URL: "https://example.com/a"},
				{Name: "Mouse B", Price: 89.9, Store: "Mercado Livre", URL: "https://example.com/b"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := api.New(srv.URL+"/api", discard())
	resp, err := client.Search(context.Background(), "mouse sem fio")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, 7, resp.Products[0].ID)
	assert.Equal(t, 0, resp.Products[1].ID, "products without history have no id")
	require.NotNil(t, resp.Breakdown)
	assert.Equal(t, 1, resp.Breakdown.Amazon)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := api.New(srv.URL, discard())
	resp, err := client.Search(context.Background(), "mouse")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "500")
}

func TestSearchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := api.New(srv.URL, discard())
	_, err := client.Search(context.Background(), "mouse")
	require.Error(t, err)
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer srv.Close()

	client := api.New(srv.URL, discard())
	_, err := client.Search(context.Background(), "mouse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestHistory(t *testing.T) {
	checked := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/products/7/history", r.URL.Path)

		hist := catalog.History{
			Product: catalog.Product{ID: 7, Name: "Mouse A", Price: 89.9, Store: "Amazon"},
			Points: []catalog.PricePoint{
				{Price: 89.9, CheckedAt: checked},
				{Price: 99.9, CheckedAt: checked.AddDate(0, 0, -7)},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(hist)
	}))
	defer srv.Close()

	client := api.New(srv.URL+"/api", discard())
	hist, err := client.History(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, hist.Product.ID)
	require.Len(t, hist.Points, 2)
	assert.Equal(t, 89.9, hist.Points[0].Price)
	assert.True(t, hist.Points[0].CheckedAt.Equal(checked))
}

func TestHistoryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := api.New(srv.URL, discard())
	_, err := client.History(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(catalog.SearchResponse{Success: true})
	}))
	defer srv.Close()

	client := api.New(srv.URL+"/api/", discard())
	_, err := client.Search(context.Background(), "mouse")
	require.NoError(t, err)
	assert.Equal(t, "/api/products/search", gotPath)
}
