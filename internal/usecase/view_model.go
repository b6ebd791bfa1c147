package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vitos/crypto_dash/internal/domain"
)

// BuildViewModel filters coins by name or symbol and orders the survivors by
// key. The input slice is left untouched. Equal values keep their input order.
func BuildViewModel(coins []domain.CoinSummary, filter string, key domain.SortKey) ([]domain.CoinSummary, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, string(key))
	}

	out := FilterCoins(coins, filter)
	desc := key.Descending()
	slices.SortStableFunc(out, func(a, b domain.CoinSummary) int {
		va, vb := key.Value(a), key.Value(b)
		if desc {
			va, vb = vb, va
		}
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

// FilterCoins returns a new slice with the coins whose name or symbol contains
// filter, ignoring case. An empty filter keeps everything.
func FilterCoins(coins []domain.CoinSummary, filter string) []domain.CoinSummary {
	needle := strings.ToLower(filter)
	out := make([]domain.CoinSummary, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Symbol), needle) {
			out = append(out, c)
		}
	}
	return out
}
