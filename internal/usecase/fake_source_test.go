package usecase

import (
	"context"
	"sync"

	"github.com/vitos/crypto_dash/internal/domain"
)

// fakeSource is a MarketDataSource driven by per-method funcs.
type fakeSource struct {
	mu        sync.Mutex
	listCalls []domain.ListParams
	coinCalls []string

	list  func(ctx context.Context, p domain.ListParams) ([]domain.CoinSummary, error)
	coin  func(ctx context.Context, id string) (*domain.CoinDetail, error)
	chart func(ctx context.Context, id, vs string, days int) (*domain.MarketChart, error)
}

func (f *fakeSource) ListCoins(ctx context.Context, p domain.ListParams) ([]domain.CoinSummary, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, p)
	f.mu.Unlock()
	return f.list(ctx, p)
}

func (f *fakeSource) GetCoin(ctx context.Context, id string) (*domain.CoinDetail, error) {
	f.mu.Lock()
	f.coinCalls = append(f.coinCalls, id)
	f.mu.Unlock()
	return f.coin(ctx, id)
}

func (f *fakeSource) GetMarketChart(ctx context.Context, id, vs string, days int) (*domain.MarketChart, error) {
	return f.chart(ctx, id, vs, days)
}

func (f *fakeSource) ListCalls() []domain.ListParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ListParams(nil), f.listCalls...)
}

var sampleCoins = []domain.CoinSummary{
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 65000, MarketCap: 1280e9, PriceChangePercentage24h: 1.5},
	{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 3100, MarketCap: 372e9, PriceChangePercentage24h: -2.1},
	{ID: "binancecoin", Name: "BNB", Symbol: "bnb", CurrentPrice: 590, MarketCap: 87e9, PriceChangePercentage24h: 0.4},
	{ID: "solana", Name: "Solana", Symbol: "sol", CurrentPrice: 145, MarketCap: 65e9, PriceChangePercentage24h: 5.2},
	{ID: "tether", Name: "Tether", Symbol: "usdt", CurrentPrice: 1, MarketCap: 110e9, PriceChangePercentage24h: 0},
	{ID: "usd-coin", Name: "USDC", Symbol: "usdc", CurrentPrice: 1, MarketCap: 33e9, PriceChangePercentage24h: 0},
}
