package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"roofscope_backend/platform/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// PriceSource supplies per-project-type base rates.
type PriceSource interface {
	Rates(ctx context.Context) (map[string]BaseRate, error)
}

// StaticSource serves the built-in pricing table.
type StaticSource struct{}

// Rates returns the static table. It never fails.
func (StaticSource) Rates(context.Context) (map[string]BaseRate, error) {
	return baseRates, nil
}

const pricingCacheKey = "pricing:base_rates"

// feedRates is the wire shape of the market pricing feed.
type feedRates struct {
	Rates map[string]struct {
		Material float64 `json:"material"`
		Labor    float64 `json:"labor"`
		Permit   float64 `json:"permit"`
	} `json:"rates"`
}

// LiveSource fetches market rates from a pricing feed with a Redis cache.
// Any fetch, decode, or cache failure degrades to the static table, so an
// estimate request never fails because the feed is down.
type LiveSource struct {
	feedURL    string
	httpClient *http.Client
	rdb        *redis.Client
	ttl        time.Duration
	limiter    *rate.Limiter
	group      singleflight.Group
	log        *logger.Logger
}

// NewLiveSource creates a live pricing source with the given cache TTL.
func NewLiveSource(feedURL string, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *LiveSource {
	return &LiveSource{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		rdb:        rdb,
		ttl:        ttl,
		// The upstream feed tolerates roughly one refresh per minute.
		limiter: rate.NewLimiter(rate.Every(time.Minute), 1),
		log:     log,
	}
}

// Rates returns cached feed rates when fresh, refreshing at most once across
// concurrent callers. On any failure the static table is returned.
func (s *LiveSource) Rates(ctx context.Context) (map[string]BaseRate, error) {
	if cached, err := s.rdb.Get(ctx, pricingCacheKey).Bytes(); err == nil {
		if rates, err := decodeRates(cached); err == nil {
			return rates, nil
		}
	}

	v, err, _ := s.group.Do(pricingCacheKey, func() (interface{}, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		s.log.Warn("live pricing unavailable, using static table", "error", err.Error())
		return baseRates, nil
	}
	return v.(map[string]BaseRate), nil
}

func (s *LiveSource) refresh(ctx context.Context) (map[string]BaseRate, error) {
	if !s.limiter.Allow() {
		return nil, fmt.Errorf("pricing feed refresh rate exceeded")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing feed returned status %d", resp.StatusCode)
	}

	var feed feedRates
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode pricing feed: %w", err)
	}

	rates := make(map[string]BaseRate, len(feed.Rates))
	for projectType, r := range feed.Rates {
		if _, known := baseRates[projectType]; !known {
			continue
		}
		if r.Material <= 0 || r.Labor <= 0 || r.Permit <= 0 {
			continue
		}
		rates[projectType] = BaseRate{MaterialRate: r.Material, LaborRate: r.Labor, PermitRate: r.Permit}
	}
	// A partial feed is worse than the static table.
	if len(rates) != len(baseRates) {
		return nil, fmt.Errorf("pricing feed incomplete: %d of %d project types", len(rates), len(baseRates))
	}

	encoded, err := json.Marshal(rates)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, pricingCacheKey, encoded, s.ttl).Err(); err != nil {
		s.log.Warn("pricing cache write failed", "error", err.Error())
	}

	return rates, nil
}

func decodeRates(data []byte) (map[string]BaseRate, error) {
	var rates map[string]BaseRate
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("empty cached rates")
	}
	return rates, nil
}
