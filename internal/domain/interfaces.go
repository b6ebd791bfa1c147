package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidLimit = errors.New("invalid limit")
	ErrEmptyCoinID  = errors.New("coin id is required")
)

const (
	DefaultLimit = 10
	MaxLimit     = 250
)

// LimitOptions are the page sizes offered by the list view.
var LimitOptions = []int{5, 10, 20, 50, 100}

// ListParams parameterises the coin list endpoint.
type ListParams struct {
	VsCurrency string
	Order      string
	PerPage    int
	Page       int
	Sparkline  bool
}

// MarketDataSource defines the remote coin-market API.
type MarketDataSource interface {
	ListCoins(ctx context.Context, params ListParams) ([]CoinSummary, error)
	GetCoin(ctx context.Context, id string) (*CoinDetail, error)
	GetMarketChart(ctx context.Context, id, vsCurrency string, days int) (*MarketChart, error)
}
