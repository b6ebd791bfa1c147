package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_dash/internal/domain"
)

func names(coins []domain.CoinSummary) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.Name
	}
	return out
}

func TestBuildViewModel_Examples(t *testing.T) {
	coins := []domain.CoinSummary{
		{Name: "Bitcoin", Symbol: "btc", MarketCap: 100},
		{Name: "BNB", Symbol: "bnb", MarketCap: 50},
	}

	out, err := BuildViewModel(coins, "b", domain.SortMarketCapDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bitcoin", "BNB"}, names(out))

	out, err = BuildViewModel(coins, "eth", domain.SortMarketCapDesc)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuildViewModel_FilterIsCaseInsensitiveSubset(t *testing.T) {
	for _, filter := range []string{"", "b", "B", "coin", "USD", "so", "t", "zzz"} {
		out, err := BuildViewModel(sampleCoins, filter, domain.SortPriceAsc)
		require.NoError(t, err)

		needle := strings.ToLower(filter)
		want := 0
		for _, c := range sampleCoins {
			if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Symbol), needle) {
				want++
			}
		}
		assert.Len(t, out, want, "filter %q", filter)

		for _, c := range out {
			assert.True(t,
				strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(strings.ToLower(c.Symbol), needle),
				"filter %q let %s through", filter, c.Name)
		}
	}
}

func TestBuildViewModel_MatchesSymbolOrName(t *testing.T) {
	out, err := BuildViewModel(sampleCoins, "BTC", domain.SortMarketCapDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bitcoin"}, names(out))

	// "eth" is Ethereum's symbol and part of Tether's name.
	out, err = BuildViewModel(sampleCoins, "ETH", domain.SortMarketCapDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ethereum", "Tether"}, names(out))

	out, err = BuildViewModel(sampleCoins, "usdt", domain.SortMarketCapDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tether"}, names(out))
}

func TestBuildViewModel_SortKeys(t *testing.T) {
	for _, key := range domain.SortKeys {
		t.Run(string(key), func(t *testing.T) {
			out, err := BuildViewModel(sampleCoins, "", key)
			require.NoError(t, err)
			require.Len(t, out, len(sampleCoins))

			for i := 1; i < len(out); i++ {
				prev, cur := key.Value(out[i-1]), key.Value(out[i])
				if key.Descending() {
					assert.GreaterOrEqual(t, prev, cur)
				} else {
					assert.LessOrEqual(t, prev, cur)
				}
			}

			again, err := BuildViewModel(out, "", key)
			require.NoError(t, err)
			assert.Equal(t, out, again)
		})
	}
}

func TestBuildViewModel_StableTies(t *testing.T) {
	// Tether and USDC share price 1 and change 0.
	out, err := BuildViewModel(sampleCoins, "", domain.SortPriceAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tether", "USDC"}, names(out[:2]))

	out, err = BuildViewModel(sampleCoins, "", domain.SortPriceDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tether", "USDC"}, names(out[4:]))
}

func TestBuildViewModel_InvalidSortKey(t *testing.T) {
	out, err := BuildViewModel(sampleCoins, "", domain.SortKey("volume_desc"))
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
	assert.Nil(t, out)

	_, err = BuildViewModel(sampleCoins, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}

func TestBuildViewModel_DoesNotMutateInput(t *testing.T) {
	in := append([]domain.CoinSummary(nil), sampleCoins...)
	_, err := BuildViewModel(in, "", domain.SortChangeDesc)
	require.NoError(t, err)
	assert.Equal(t, sampleCoins, in)
}

func TestBuildViewModel_Change(t *testing.T) {
	out, err := BuildViewModel(sampleCoins, "", domain.SortChangeDesc)
	require.NoError(t, err)
	assert.Equal(t, "Solana", out[0].Name)
	assert.Equal(t, "Ethereum", out[len(out)-1].Name)
}
