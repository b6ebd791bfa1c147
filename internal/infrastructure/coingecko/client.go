package coingecko

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

	"github.com/vitos/crypto_dash/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL      = "https://api.coingecko.com/api/v3"
	DefaultAPIKeyHeader = "x-cg-demo-api-key"

	maxErrorBody = 512
)

type Config struct {
	BaseURL      string
	APIKey       string
	APIKeyHeader string
	Timeout      time.Duration
}

// Client talks to a CoinGecko-compatible REST API.
type Client struct {
	baseURL      string
	apiKey       string
	apiKeyHeader string
	client       *http.Client
	logger       *zap.Logger
}

var _ domain.MarketDataSource = (*Client)(nil)

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIKeyHeader == "" {
		cfg.APIKeyHeader = DefaultAPIKeyHeader
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		apiKeyHeader: cfg.APIKeyHeader,
		client:       &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}
}

// ListCoins fetches one page of coin summaries.
func (c *Client) ListCoins(ctx context.Context, params domain.ListParams) ([]domain.CoinSummary, error) {
	if params.PerPage < 1 || params.PerPage > domain.MaxLimit {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLimit, params.PerPage)
	}
	if params.VsCurrency == "" {
		params.VsCurrency = "usd"
	}
	if params.Order == "" {
		params.Order = string(domain.SortMarketCapDesc)
	}
	if params.Page < 1 {
		params.Page = 1
	}

	q := url.Values{}
	q.Set("vs_currency", params.VsCurrency)
	q.Set("order", params.Order)
	q.Set("per_page", strconv.Itoa(params.PerPage))
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("sparkline", strconv.FormatBool(params.Sparkline))

	var coins []domain.CoinSummary
	if err := c.getJSON(ctx, "/coins/markets", q, &coins); err != nil {
		return nil, err
	}
	if coins == nil {
		coins = []domain.CoinSummary{}
	}
	return coins, nil
}

// GetCoin fetches the full record of a single coin.
func (c *Client) GetCoin(ctx context.Context, id string) (*domain.CoinDetail, error) {
	if id == "" {
		return nil, domain.ErrEmptyCoinID
	}

	var detail domain.CoinDetail
	path := "/coins/" + url.PathEscape(id)
	if err := c.getJSON(ctx, path, nil, &detail); err != nil {
		return nil, err
	}
	if detail.ID == "" {
		return nil, &domain.DecodeError{URL: c.baseURL + path, Err: errors.New("response has no id")}
	}
	return &detail, nil
}

// GetMarketChart fetches the trailing price series of a coin.
func (c *Client) GetMarketChart(ctx context.Context, id, vsCurrency string, days int) (*domain.MarketChart, error) {
	if id == "" {
		return nil, domain.ErrEmptyCoinID
	}
	if vsCurrency == "" {
		vsCurrency = "usd"
	}

	q := url.Values{}
	q.Set("vs_currency", vsCurrency)
	q.Set("days", strconv.Itoa(days))

	var chart domain.MarketChart
	if err := c.getJSON(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", q, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(c.apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("coin api response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.StatusError{URL: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return &domain.TransportError{URL: endpoint, Err: ctx.Err()}
		}
		return &domain.DecodeError{URL: endpoint, Err: err}
	}
	return nil
}
