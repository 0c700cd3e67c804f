// Package market fetches stock quotes and symbol searches from Alpha Vantage.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sony/gobreaker"

	"github.com/tbourn/go-career-backend/internal/breaker"
	"github.com/tbourn/go-career-backend/internal/config"
)

var (
	// ErrNotConfigured means no API key was supplied.
	ErrNotConfigured = errors.New("market: provider not configured")
	// ErrSymbolNotFound means the provider knows no such symbol.
	ErrSymbolNotFound = errors.New("market: symbol not found")
	// ErrUnavailable means the breaker is open.
	ErrUnavailable = errors.New("market: provider temporarily unavailable")
	// ErrUpstream wraps provider-side failures (rate limits, bad payloads).
	ErrUpstream = errors.New("market: upstream error")
)

// Quote is the latest trade summary for a symbol.
type Quote struct {
	Symbol           string  `json:"symbol"`
	Price            float64 `json:"price"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	PreviousClose    float64 `json:"previousClose"`
	Change           float64 `json:"change"`
	ChangePercent    string  `json:"changePercent"`
	Volume           int64   `json:"volume"`
	LatestTradingDay string  `json:"latestTradingDay"`
}

// SearchResult is one symbol-search match.
type SearchResult struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Region     string  `json:"region"`
	Currency   string  `json:"currency"`
	MatchScore float64 `json:"matchScore"`
}

// Provider is the market-data contract used by the HTTP layer.
type Provider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// Client is the Alpha Vantage Provider.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker

	// Entries live for a fixed cacheTTL from insertion; zero disables caching.
	cacheTTL time.Duration
	quotes   *ttlcache.Cache[string, Quote]
	searches *ttlcache.Cache[string, []SearchResult]
}

var _ Provider = (*Client)(nil)

// New builds a Client. httpClient may be nil.
func New(cfg config.MarketConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		http:     httpClient,
		cb:       breaker.New(breaker.Default("alphavantage")),
		cacheTTL: cfg.CacheTTL,
		quotes:   newCache[Quote](cfg.CacheTTL),
		searches: newCache[[]SearchResult](cfg.CacheTTL),
	}
}

func newCache[V any](ttl time.Duration) *ttlcache.Cache[string, V] {
	return ttlcache.New[string, V](
		ttlcache.WithTTL[string, V](ttl),
		ttlcache.WithDisableTouchOnHit[string, V](),
	)
}

func lookup[V any](c *ttlcache.Cache[string, V], key string) (V, bool) {
	if it := c.Get(key); it != nil {
		return it.Value(), true
	}
	var zero V
	return zero, false
}

// Sweep evicts expired cache entries and returns how many were removed.
func (c *Client) Sweep() int {
	return deleteExpired(c.quotes) + deleteExpired(c.searches)
}

func deleteExpired[V any](c *ttlcache.Cache[string, V]) int {
	before := c.Metrics().Evictions
	c.DeleteExpired()
	return int(c.Metrics().Evictions - before)
}

type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
}

// Quote returns the latest quote for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if q, ok := lookup(c.quotes, symbol); ok {
		return q, nil
	}

	var resp globalQuoteResponse
	if err := c.query(ctx, url.Values{"function": {"GLOBAL_QUOTE"}, "symbol": {symbol}}, &resp); err != nil {
		return Quote{}, err
	}
	g := resp.GlobalQuote
	if len(g) == 0 || g["01. symbol"] == "" {
		return Quote{}, ErrSymbolNotFound
	}

	q := Quote{
		Symbol:           g["01. symbol"],
		Open:             parseFloat(g["02. open"]),
		High:             parseFloat(g["03. high"]),
		Low:              parseFloat(g["04. low"]),
		Price:            parseFloat(g["05. price"]),
		LatestTradingDay: g["07. latest trading day"],
		PreviousClose:    parseFloat(g["08. previous close"]),
		Change:           parseFloat(g["09. change"]),
		ChangePercent:    g["10. change percent"],
	}
	q.Volume, _ = strconv.ParseInt(g["06. volume"], 10, 64)

	if c.cacheTTL > 0 {
		c.quotes.Set(symbol, q, ttlcache.DefaultTTL)
	}
	return q, nil
}

type symbolSearchResponse struct {
	BestMatches []map[string]string `json:"bestMatches"`
}

// Search returns symbols matching query, best match first.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	key := strings.ToLower(query)
	if r, ok := lookup(c.searches, key); ok {
		return r, nil
	}

	var resp symbolSearchResponse
	if err := c.query(ctx, url.Values{"function": {"SYMBOL_SEARCH"}, "keywords": {query}}, &resp); err != nil {
		return nil, err
	}
	out := make([]SearchResult, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		out = append(out, SearchResult{
			Symbol:     m["1. symbol"],
			Name:       m["2. name"],
			Type:       m["3. type"],
			Region:     m["4. region"],
			Currency:   m["8. currency"],
			MatchScore: parseFloat(m["9. matchScore"]),
		})
	}

	if c.cacheTTL > 0 {
		c.searches.Set(key, out, ttlcache.DefaultTTL)
	}
	return out, nil
}

// query performs one provider call through the breaker and decodes into v.
func (c *Client) query(ctx context.Context, params url.Values, v any) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}
	params.Set("apikey", c.apiKey)

	body, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetch(ctx, params)
	})
	if breaker.IsOpen(err) {
		return ErrUnavailable
	}
	if err != nil {
		return err
	}
	raw := body.([]byte)

	// Alpha Vantage answers 200 with a message object for rate limits and
	// bad requests.
	var msg struct {
		Note        string `json:"Note"`
		Information string `json:"Information"`
		Error       string `json:"Error Message"`
	}
	if err := json.Unmarshal(raw, &msg); err == nil {
		switch {
		case msg.Error != "":
			if strings.Contains(strings.ToLower(msg.Error), "invalid api call") {
				return ErrSymbolNotFound
			}
			return fmt.Errorf("%w: %s", ErrUpstream, msg.Error)
		case msg.Note != "":
			return fmt.Errorf("%w: %s", ErrUpstream, msg.Note)
		case msg.Information != "":
			return fmt.Errorf("%w: %s", ErrUpstream, msg.Information)
		}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return raw, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	return f
}
