package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-career-backend/internal/config"
)

const quoteBody = `{"Global Quote": {
  "01. symbol": "IBM", "02. open": "170.00", "03. high": "172.50", "04. low": "169.10",
  "05. price": "171.25", "06. volume": "3141592", "07. latest trading day": "2026-10-13",
  "08. previous close": "170.05", "09. change": "1.2000", "10. change percent": "0.7057%"}}`

const searchBody = `{"bestMatches": [
  {"1. symbol": "TSCO.LON", "2. name": "Tesco PLC", "3. type": "Equity", "4. region": "United Kingdom",
   "8. currency": "GBX", "9. matchScore": "0.7273"},
  {"1. symbol": "TSCDF", "2. name": "Tesco plc", "3. type": "Equity", "4. region": "United States",
   "8. currency": "USD", "9. matchScore": "0.7143"}]}`

func newTestClient(t *testing.T, ttl time.Duration, h http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	c := New(config.MarketConfig{APIKey: "test-key", BaseURL: srv.URL + "/query", CacheTTL: ttl}, srv.Client())
	return c, &calls
}

func TestQuote_ParsesAndCaches(t *testing.T) {
	c, calls := newTestClient(t, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "IBM", r.URL.Query().Get("symbol"))
		_, _ = w.Write([]byte(quoteBody))
	})

	q, err := c.Quote(context.Background(), " ibm ")
	require.NoError(t, err)
	assert.Equal(t, "IBM", q.Symbol)
	assert.InDelta(t, 171.25, q.Price, 1e-9)
	assert.InDelta(t, 1.2, q.Change, 1e-9)
	assert.Equal(t, "0.7057%", q.ChangePercent)
	assert.Equal(t, int64(3141592), q.Volume)
	assert.Equal(t, "2026-10-13", q.LatestTradingDay)

	_, err = c.Quote(context.Background(), "IBM")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestQuote_UnknownSymbol(t *testing.T) {
	c, _ := newTestClient(t, 0, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Global Quote": {}}`))
	})
	_, err := c.Quote(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestQuote_ProviderMessages(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"rate limit note":  {`{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`, ErrUpstream},
		"information":      {`{"Information": "The demo API key is for demo purposes only."}`, ErrUpstream},
		"invalid api call": {`{"Error Message": "Invalid API call. Please retry or visit the documentation."}`, ErrSymbolNotFound},
		"other error":      {`{"Error Message": "the parameter apikey is invalid"}`, ErrUpstream},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, time.Minute, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.Quote(context.Background(), "IBM")
			assert.ErrorIs(t, err, tc.want)
			// failures are never cached
			assert.Equal(t, 0, c.quotes.Len())
		})
	}
}

func TestQuote_HTTPErrorStatus(t *testing.T) {
	c, _ := newTestClient(t, 0, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.Quote(context.Background(), "IBM")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSearch(t *testing.T) {
	c, calls := newTestClient(t, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SYMBOL_SEARCH", r.URL.Query().Get("function"))
		assert.Equal(t, "tesco", r.URL.Query().Get("keywords"))
		_, _ = w.Write([]byte(searchBody))
	})

	got, err := c.Search(context.Background(), "tesco")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, SearchResult{
		Symbol: "TSCO.LON", Name: "Tesco PLC", Type: "Equity",
		Region: "United Kingdom", Currency: "GBX", MatchScore: 0.7273,
	}, got[0])

	_, err = c.Search(context.Background(), "TESCO")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestSearch_NoMatchesIsEmpty(t *testing.T) {
	c, _ := newTestClient(t, 0, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"bestMatches": []}`))
	})
	got, err := c.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNotConfigured(t *testing.T) {
	c := New(config.MarketConfig{BaseURL: "http://invalid.local"}, nil)
	_, err := c.Quote(context.Background(), "IBM")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.Search(context.Background(), "ibm")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSweep(t *testing.T) {
	c := New(config.MarketConfig{APIKey: "k", CacheTTL: 50 * time.Millisecond}, nil)

	c.quotes.Set("IBM", Quote{Symbol: "IBM"}, ttlcache.DefaultTTL)
	c.searches.Set("ibm", []SearchResult{{Symbol: "IBM"}}, ttlcache.DefaultTTL)
	assert.Equal(t, 0, c.Sweep())
	_, ok := lookup(c.quotes, "IBM")
	assert.True(t, ok)

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 2, c.Sweep())
	assert.Equal(t, 0, c.quotes.Len())
	assert.Equal(t, 0, c.searches.Len())
	_, ok = lookup(c.quotes, "IBM")
	assert.False(t, ok)
}

func TestZeroTTLDisablesCache(t *testing.T) {
	c, calls := newTestClient(t, 0, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"bestMatches":[]}`))
	})
	for i := 0; i < 2; i++ {
		_, err := c.Search(context.Background(), "ibm")
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, atomic.LoadInt32(calls))
	assert.Equal(t, 0, c.searches.Len())
}
