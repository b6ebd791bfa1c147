package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// SortKey selects the ordering of the coin list.
type SortKey string

const (
	SortMarketCapDesc SortKey = "market_cap_desc"
	SortMarketCapAsc  SortKey = "market_cap_asc"
	SortPriceDesc     SortKey = "price_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortChangeDesc    SortKey = "change_desc"
	SortChangeAsc     SortKey = "change_asc"
)

const DefaultSortKey = SortMarketCapDesc

// SortKeys lists every supported key in display order.
var SortKeys = []SortKey{
	SortMarketCapDesc,
	SortMarketCapAsc,
	SortPriceDesc,
	SortPriceAsc,
	SortChangeDesc,
	SortChangeAsc,
}

var sortLabels = map[SortKey]string{
	SortMarketCapDesc: "Market Cap (High to Low)",
	SortMarketCapAsc:  "Market Cap (Low to High)",
	SortPriceDesc:     "Price (High to Low)",
	SortPriceAsc:      "Price (Low to High)",
	SortChangeDesc:    "24h Change (High to Low)",
	SortChangeAsc:     "24h Change (Low to High)",
}

func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return k, nil
}

func (k SortKey) Valid() bool {
	_, ok := sortLabels[k]
	return ok
}

func (k SortKey) Label() string {
	return sortLabels[k]
}

// Value extracts the field the key orders by.
func (k SortKey) Value(c CoinSummary) float64 {
	switch k {
	case SortMarketCapDesc, SortMarketCapAsc:
		return c.MarketCap
	case SortPriceDesc, SortPriceAsc:
		return c.CurrentPrice
	default:
		return c.PriceChangePercentage24h
	}
}

// Descending reports whether larger values come first.
func (k SortKey) Descending() bool {
	return k == SortMarketCapDesc || k == SortPriceDesc || k == SortChangeDesc
}
