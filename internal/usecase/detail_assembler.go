package usecase

import (
	"strings"

	"github.com/vitos/crypto_dash/internal/domain"
)

// CoinDetailView is the display form of a CoinDetail. Optional links and
// categories are empty when the source omits them.
type CoinDetailView struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Title             string   `json:"title"`
	Image             string   `json:"image,omitempty"`
	Summary           string   `json:"summary"`
	Rank              int      `json:"rank"`
	CurrentPrice      string   `json:"current_price"`
	MarketCap         string   `json:"market_cap"`
	PriceChange24h    string   `json:"price_change_24h"`
	PriceChangePct24h string   `json:"price_change_percentage_24h"`
	CirculatingSupply string   `json:"circulating_supply"`
	TotalSupply       string   `json:"total_supply"`
	ATH               string   `json:"ath"`
	ATHDate           string   `json:"ath_date"`
	ATL               string   `json:"atl"`
	ATLDate           string   `json:"atl_date"`
	LastUpdated       string   `json:"last_updated"`
	Homepage          string   `json:"homepage,omitempty"`
	Explorer          string   `json:"explorer,omitempty"`
	Categories        []string `json:"categories,omitempty"`
}

func (v CoinDetailView) CategoryList() string {
	return strings.Join(v.Categories, ", ")
}

// AssembleDetail derives the display fields of a coin for currency.
func AssembleDetail(d domain.CoinDetail, currency string) CoinDetailView {
	if currency == "" {
		currency = "usd"
	}
	md := d.MarketData
	symbol := strings.ToUpper(d.Symbol)

	v := CoinDetailView{
		ID:                d.ID,
		Name:              d.Name,
		Symbol:            symbol,
		Title:             d.Name + " (" + symbol + ")",
		Image:             d.Image.Large,
		Summary:           FirstSentence(d.Description.En),
		Rank:              d.MarketCapRank,
		CurrentPrice:      moneyIn(md.CurrentPrice, currency),
		MarketCap:         moneyIn(md.MarketCap, currency),
		PriceChange24h:    FormatMoney(md.PriceChange24h, currency),
		PriceChangePct24h: FormatPercent(md.PriceChangePercentage24h),
		CirculatingSupply: FormatNumber(md.CirculatingSupply),
		TotalSupply:       NotAvailable,
		ATH:               moneyIn(md.ATH, currency),
		ATHDate:           FormatDate(md.ATHDate[currency]),
		ATL:               moneyIn(md.ATL, currency),
		ATLDate:           FormatDate(md.ATLDate[currency]),
		LastUpdated:       FormatDate(d.LastUpdated),
		Homepage:          firstNonEmpty(d.Links.Homepage),
		Explorer:          firstNonEmpty(d.Links.BlockchainSite),
	}
	if md.TotalSupply != nil && *md.TotalSupply > 0 {
		v.TotalSupply = FormatNumber(*md.TotalSupply)
	}
	for _, c := range d.Categories {
		if c = strings.TrimSpace(c); c != "" {
			v.Categories = append(v.Categories, c)
		}
	}
	return v
}

// FirstSentence returns text up to and including the first ". ".
// The trailing space is dropped. Text without a sentence break is returned
// whole.
func FirstSentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, ". "); i >= 0 {
		return text[:i+1]
	}
	return text
}

func moneyIn(values map[string]float64, currency string) string {
	v, ok := values[currency]
	if !ok {
		return NotAvailable
	}
	return FormatMoney(v, currency)
}

func firstNonEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
