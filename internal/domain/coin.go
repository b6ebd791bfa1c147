package domain

import (
	"encoding/json"
	"fmt"
)

// CoinSummary is the per-coin market snapshot returned by the list endpoint.
type CoinSummary struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	MarketCapRank            int     `json:"market_cap_rank"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
}

// CoinDetail is the full record returned by the detail endpoint.
type CoinDetail struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Symbol        string      `json:"symbol"`
	Description   Description `json:"description"`
	Image         CoinImage   `json:"image"`
	MarketCapRank int         `json:"market_cap_rank"`
	MarketData    MarketData  `json:"market_data"`
	Links         Links       `json:"links"`
	Categories    []string    `json:"categories"`
	LastUpdated   string      `json:"last_updated"`
}

type Description struct {
	En string `json:"en"`
}

type CoinImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// MarketData holds the extended statistics of a coin. Per-currency values are
// keyed by lower-case currency code ("usd").
type MarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	MarketCap                map[string]float64 `json:"market_cap"`
	ATH                      map[string]float64 `json:"ath"`
	ATHDate                  map[string]string  `json:"ath_date"`
	ATL                      map[string]float64 `json:"atl"`
	ATLDate                  map[string]string  `json:"atl_date"`
	PriceChange24h           float64            `json:"price_change_24h"`
	PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
	CirculatingSupply        float64            `json:"circulating_supply"`
	TotalSupply              *float64           `json:"total_supply"` // null for uncapped coins
}

type Links struct {
	Homepage       []string `json:"homepage"`
	BlockchainSite []string `json:"blockchain_site"`
}

// PricePoint is a single sample of a price time series.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"` // unix millis
	Price     float64 `json:"price"`
}

// MarketChart is the market_chart response. Only prices are consumed; the API
// encodes them as [timestampMillis, price] pairs.
type MarketChart struct {
	Prices []PricePoint `json:"prices"`
}

func (m *MarketChart) UnmarshalJSON(data []byte) error {
	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Prices == nil {
		return fmt.Errorf("market chart: missing prices")
	}

	points := make([]PricePoint, 0, len(raw.Prices))
	for i, pair := range raw.Prices {
		if len(pair) != 2 {
			return fmt.Errorf("market chart: price %d has %d elements, want 2", i, len(pair))
		}
		points = append(points, PricePoint{Timestamp: int64(pair[0]), Price: pair[1]})
	}
	m.Prices = points
	return nil
}
