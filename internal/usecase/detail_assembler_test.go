package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitos/crypto_dash/internal/domain"
)

func sampleDetail() domain.CoinDetail {
	total := 21000000.0
	return domain.CoinDetail{
		ID:            "bitcoin",
		Name:          "Bitcoin",
		Symbol:        "btc",
		Description:   domain.Description{En: "A digital currency. It is decentralized. More text."},
		Image:         domain.CoinImage{Large: "https://img/btc.png"},
		MarketCapRank: 1,
		MarketData: domain.MarketData{
			CurrentPrice:             map[string]float64{"usd": 65000.5},
			MarketCap:                map[string]float64{"usd": 1280000000000},
			ATH:                      map[string]float64{"usd": 73738},
			ATHDate:                  map[string]string{"usd": "2024-03-14T07:10:36.635Z"},
			ATL:                      map[string]float64{"usd": 67.81},
			ATLDate:                  map[string]string{"usd": "2013-07-06T00:00:00.000Z"},
			PriceChange24h:           -812.345,
			PriceChangePercentage24h: -1.2345,
			CirculatingSupply:        19700000,
			TotalSupply:              &total,
		},
		Links: domain.Links{
			Homepage:       []string{"https://bitcoin.org", ""},
			BlockchainSite: []string{"https://mempool.space/"},
		},
		Categories:  []string{"Cryptocurrency", "Layer 1 (L1)"},
		LastUpdated: "2024-05-01T10:00:00.000Z",
	}
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "A digital currency.", FirstSentence("A digital currency. It is decentralized. More text."))
	assert.Equal(t, "No break here", FirstSentence("No break here"))
	assert.Equal(t, "Ends with a dot.", FirstSentence("Ends with a dot."))
	assert.Equal(t, "", FirstSentence("  "))
	assert.Equal(t, "Version 1.5 is out.", FirstSentence("Version 1.5 is out. Upgrade now."))
}

func TestAssembleDetail(t *testing.T) {
	v := AssembleDetail(sampleDetail(), "usd")

	assert.Equal(t, "Bitcoin (BTC)", v.Title)
	assert.Equal(t, "A digital currency.", v.Summary)
	assert.Equal(t, 1, v.Rank)
	assert.Equal(t, "$65,000.5", v.CurrentPrice)
	assert.Equal(t, "$1,280,000,000,000", v.MarketCap)
	assert.Equal(t, "-$812.35", v.PriceChange24h)
	assert.Equal(t, "-1.23%", v.PriceChangePct24h)
	assert.Equal(t, "19,700,000", v.CirculatingSupply)
	assert.Equal(t, "21,000,000", v.TotalSupply)
	assert.Equal(t, "$73,738", v.ATH)
	assert.Equal(t, "Mar 14, 2024", v.ATHDate)
	assert.Equal(t, "$67.81", v.ATL)
	assert.Equal(t, "Jul 6, 2013", v.ATLDate)
	assert.Equal(t, "May 1, 2024", v.LastUpdated)
	assert.Equal(t, "https://bitcoin.org", v.Homepage)
	assert.Equal(t, "https://mempool.space/", v.Explorer)
	assert.Equal(t, "Cryptocurrency, Layer 1 (L1)", v.CategoryList())
}

func TestAssembleDetail_OptionalFieldsAbsent(t *testing.T) {
	d := sampleDetail()
	d.MarketData.TotalSupply = nil
	d.Links = domain.Links{Homepage: []string{""}}
	d.Categories = nil
	d.MarketData.ATHDate = nil

	v := AssembleDetail(d, "usd")
	assert.Equal(t, NotAvailable, v.TotalSupply)
	assert.Empty(t, v.Homepage)
	assert.Empty(t, v.Explorer)
	assert.Empty(t, v.Categories)
	assert.Equal(t, NotAvailable, v.ATHDate)
}

func TestAssembleDetail_MissingCurrency(t *testing.T) {
	v := AssembleDetail(sampleDetail(), "eur")
	assert.Equal(t, NotAvailable, v.CurrentPrice)
	assert.Equal(t, NotAvailable, v.MarketCap)
}

func TestAssembleDetail_HugeSupply(t *testing.T) {
	d := sampleDetail()
	supply := 1e21
	d.MarketData.TotalSupply = &supply
	d.MarketData.CirculatingSupply = 1e19

	v := AssembleDetail(d, "usd")
	assert.Equal(t, "1,000,000,000,000,000,000,000", v.TotalSupply)
	assert.Equal(t, "10,000,000,000,000,000,000", v.CirculatingSupply)
}
