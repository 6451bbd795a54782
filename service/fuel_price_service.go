package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"commute-agent/domain"
	"commute-agent/logger"
	"commute-agent/metrics"
	"commute-agent/repository"
)

const (
	FuelSourceProvider = "opinet"
	FuelSourceFallback = "fallback"

	fuelCacheKey      = "fuel:gasoline"
	gasolineProductCd = "B027"
	tradeDateLayout   = "20060102"
)

// PriceSource supplies the current gasoline price. It never fails: callers
// always receive a usable quote.
type PriceSource interface {
	Get(ctx context.Context) domain.FuelQuote
}

type FuelPriceOptions struct {
	ProviderURL    string
	APIKey         string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	FallbackPrice  float64
}

// FuelPriceService looks up the national average gasoline price, caching
// every answer, the fallback included, for CacheTTL.
type FuelPriceService struct {
	opts   FuelPriceOptions
	cache  repository.CacheRepository
	client *http.Client
	logger logger.Logger
	now    func() time.Time
}

func NewFuelPriceService(opts FuelPriceOptions, cache repository.CacheRepository, log logger.Logger) *FuelPriceService {
	if opts.FallbackPrice <= 0 {
		opts.FallbackPrice = DefaultFuelPricePerLiter
	}
	return &FuelPriceService{
		opts:   opts,
		cache:  cache,
		client: &http.Client{Timeout: opts.RequestTimeout},
		logger: log,
		now:    time.Now,
	}
}

func (s *FuelPriceService) Get(ctx context.Context) domain.FuelQuote {
	if quote, ok := s.cached(ctx); ok {
		metrics.FuelPriceLookups.WithLabelValues("cache").Inc()
		return quote
	}

	quote, err := s.fetch(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("fuel price lookup failed, using fallback", map[string]interface{}{
			"fallbackPrice": s.opts.FallbackPrice,
		})
		quote = s.fallback()
	}
	metrics.FuelPriceLookups.WithLabelValues(quote.Source).Inc()

	if raw, err := json.Marshal(quote); err == nil {
		if err := s.cache.Set(ctx, fuelCacheKey, string(raw), s.opts.CacheTTL); err != nil {
			s.logger.WithError(err).Warn("fuel price cache write failed", nil)
		}
	}
	return quote
}

func (s *FuelPriceService) cached(ctx context.Context) (domain.FuelQuote, bool) {
	raw, ok, err := s.cache.Get(ctx, fuelCacheKey)
	if err != nil {
		s.logger.WithError(err).Warn("fuel price cache read failed", nil)
		return domain.FuelQuote{}, false
	}
	if !ok {
		return domain.FuelQuote{}, false
	}
	var quote domain.FuelQuote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		s.logger.WithError(err).Warn("discarding malformed cached fuel price", nil)
		return domain.FuelQuote{}, false
	}
	return quote, true
}

func (s *FuelPriceService) fallback() domain.FuelQuote {
	return domain.FuelQuote{
		PricePerLiter: s.opts.FallbackPrice,
		Source:        FuelSourceFallback,
		AsOf:          s.now().UTC().Truncate(24 * time.Hour),
	}
}

// opinetResponse is the provider's average price payload.
type opinetResponse struct {
	Result struct {
		Oil []struct {
			TradeDate string      `json:"TRADE_DT"`
			ProductCd string      `json:"PRODCD"`
			Price     opinetPrice `json:"PRICE"`
		} `json:"OIL"`
	} `json:"RESULT"`
}

// opinetPrice accepts the price either as a JSON number or a quoted one.
type opinetPrice float64

func (p *opinetPrice) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseFloat(strings.Trim(string(b), `"`), 64)
	if err != nil {
		return fmt.Errorf("parse price %s: %w", b, err)
	}
	*p = opinetPrice(v)
	return nil
}

func (s *FuelPriceService) fetch(ctx context.Context) (domain.FuelQuote, error) {
	if s.opts.APIKey == "" {
		return domain.FuelQuote{}, fmt.Errorf("no fuel price api key configured")
	}

	if s.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.RequestTimeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set("out", "json")
	q.Set("code", s.opts.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.opts.ProviderURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.FuelQuote{}, fmt.Errorf("build fuel price request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.FuelQuote{}, fmt.Errorf("fuel price request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.FuelQuote{}, fmt.Errorf("fuel price provider returned %d", resp.StatusCode)
	}

	var payload opinetResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return domain.FuelQuote{}, fmt.Errorf("decode fuel price response: %w", err)
	}

	for _, oil := range payload.Result.Oil {
		if oil.ProductCd != gasolineProductCd {
			continue
		}
		if oil.Price <= 0 {
			return domain.FuelQuote{}, fmt.Errorf("non-positive gasoline price %v", float64(oil.Price))
		}
		asOf, err := time.Parse(tradeDateLayout, oil.TradeDate)
		if err != nil {
			asOf = s.now().UTC().Truncate(24 * time.Hour)
		}
		return domain.FuelQuote{
			PricePerLiter: float64(oil.Price),
			Source:        FuelSourceProvider,
			AsOf:          asOf,
		}, nil
	}
	return domain.FuelQuote{}, fmt.Errorf("gasoline price missing from provider response")
}
