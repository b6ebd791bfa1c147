package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketChart_UnmarshalJSON(t *testing.T) {
	var chart MarketChart
	err := json.Unmarshal([]byte(`{"prices":[[1714550400000,64000.5],[1714636800000,65000]],"market_caps":[]}`), &chart)
	require.NoError(t, err)
	assert.Equal(t, []PricePoint{
		{Timestamp: 1714550400000, Price: 64000.5},
		{Timestamp: 1714636800000, Price: 65000},
	}, chart.Prices)
}

func TestMarketChart_UnmarshalJSON_Empty(t *testing.T) {
	var chart MarketChart
	require.NoError(t, json.Unmarshal([]byte(`{"prices":[]}`), &chart))
	assert.Empty(t, chart.Prices)
}

func TestMarketChart_UnmarshalJSON_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing prices": `{}`,
		"short pair":     `{"prices":[[1714550400000]]}`,
		"long pair":      `{"prices":[[1,2,3]]}`,
		"not numbers":    `{"prices":[["a","b"]]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var chart MarketChart
			assert.Error(t, json.Unmarshal([]byte(body), &chart))
		})
	}
}

func TestCoinDetail_NullTotalSupply(t *testing.T) {
	var d CoinDetail
	require.NoError(t, json.Unmarshal([]byte(`{"id":"ethereum","market_data":{"total_supply":null,"current_price":{"usd":3100}}}`), &d))
	assert.Nil(t, d.MarketData.TotalSupply)
	assert.Equal(t, 3100.0, d.MarketData.CurrentPrice["usd"])
}
