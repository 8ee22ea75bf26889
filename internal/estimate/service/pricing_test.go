package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roofscope_backend/internal/estimate/transport"
	"roofscope_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const feedBody = `{"rates":{
	"residential":{"material":90,"labor":60,"permit":9},
	"commercial":{"material":100,"labor":70,"permit":13},
	"industrial":{"material":120,"labor":80,"permit":16},
	"agricultural":{"material":75,"labor":50,"permit":7}
}}`

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestLiveSource_FetchesAndCaches(t *testing.T) {
	fetches := 0
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte(feedBody))
	}))
	defer feed.Close()

	mr, rdb := newTestRedis(t)
	src := NewLiveSource(feed.URL, rdb, 24*time.Hour, logger.New("development"))

	rates, err := src.Rates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["residential"].MaterialRate != 90 {
		t.Fatalf("expected feed material rate 90, got %v", rates["residential"].MaterialRate)
	}
	if fetches != 1 {
		t.Fatalf("expected 1 feed fetch, got %d", fetches)
	}

	// Second read must come from the cache.
	rates, err = src.Rates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["commercial"].LaborRate != 70 {
		t.Fatalf("expected cached labor rate 70, got %v", rates["commercial"].LaborRate)
	}
	if fetches != 1 {
		t.Fatalf("expected cache hit, feed fetched %d times", fetches)
	}

	if !mr.Exists(pricingCacheKey) {
		t.Fatalf("expected cache key %q to exist", pricingCacheKey)
	}
}

func TestLiveSource_FeedFailureFallsBackToStaticTable(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer feed.Close()

	_, rdb := newTestRedis(t)
	src := NewLiveSource(feed.URL, rdb, 24*time.Hour, logger.New("development"))

	rates, err := src.Rates(context.Background())
	if err != nil {
		t.Fatalf("fallback must not surface an error, got %v", err)
	}
	if rates["residential"].MaterialRate != baseRates["residential"].MaterialRate {
		t.Fatalf("expected static fallback rates, got %v", rates["residential"])
	}
}

func TestLiveSource_IncompleteFeedFallsBackToStaticTable(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"residential":{"material":90,"labor":60,"permit":9}}}`))
	}))
	defer feed.Close()

	_, rdb := newTestRedis(t)
	src := NewLiveSource(feed.URL, rdb, 24*time.Hour, logger.New("development"))

	rates, err := src.Rates(context.Background())
	if err != nil {
		t.Fatalf("fallback must not surface an error, got %v", err)
	}
	if rates["commercial"] != baseRates["commercial"] {
		t.Fatalf("expected static fallback for incomplete feed")
	}
}

func TestEstimate_UsesLiveRatesWhenAvailable(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedBody))
	}))
	defer feed.Close()

	_, rdb := newTestRedis(t)
	src := NewLiveSource(feed.URL, rdb, 24*time.Hour, logger.New("development"))
	svc := New(src)

	result, err := svc.Estimate(context.Background(), transport.EstimateRequest{
		ProjectType:  "residential",
		AreaSqFt:     100,
		MaterialTier: "standard",
		Location:     "Smallville",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 100 × 90 (feed rate, not the static 85)
	if result.MaterialsCost != 9000 {
		t.Fatalf("expected live materials 9000, got %d", result.MaterialsCost)
	}
}
