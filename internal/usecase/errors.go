package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/vitos/crypto_dash/internal/domain"
)

var ErrRequestTimeout = errors.New("request timed out")

// UserMessage reduces any fetch error to the single line shown in the view.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		statusErr    *domain.StatusError
		decodeErr    *domain.DecodeError
		transportErr *domain.TransportError
		netErr       net.Error
	)
	switch {
	case errors.Is(err, ErrRequestTimeout), errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	// The HTTP client's own timer may fire before the request context.
	case errors.As(err, &netErr) && netErr.Timeout():
		return "Request timed out"
	case errors.As(err, &statusErr):
		if statusErr.StatusCode == 404 {
			return "Coin not found"
		}
		return fmt.Sprintf("Failed to fetch data (HTTP %d)", statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		return "Unexpected response from market data API"
	case errors.As(err, &transportErr):
		return "Network error: unable to reach market data API"
	case errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrEmptyCoinID):
		return err.Error()
	default:
		return "Failed to fetch data"
	}
}
