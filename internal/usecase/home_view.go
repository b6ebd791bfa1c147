package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/vitos/crypto_dash/internal/domain"
	"go.uber.org/zap"
)

type ViewConfig struct {
	VsCurrency   string
	DefaultLimit int
	Timeout      time.Duration
	Logger       *zap.Logger
}

func (c ViewConfig) withDefaults() ViewConfig {
	if c.VsCurrency == "" {
		c.VsCurrency = "usd"
	}
	if c.DefaultLimit == 0 {
		c.DefaultLimit = domain.DefaultLimit
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// SortOption is a selectable sort key with its label.
type SortOption struct {
	Key      domain.SortKey `json:"key"`
	Label    string         `json:"label"`
	Selected bool           `json:"selected"`
}

// HomeViewModel is everything the list page renders.
type HomeViewModel struct {
	Loading      bool                 `json:"loading"`
	Error        string               `json:"error,omitempty"`
	Currency     string               `json:"currency"`
	Coins        []domain.CoinSummary `json:"coins"`
	Empty        bool                 `json:"empty"`
	Total        int                  `json:"total"`
	Limit        int                  `json:"limit"`
	Filter       string               `json:"filter"`
	Sort         domain.SortKey       `json:"sort"`
	LimitOptions []int                `json:"limit_options"`
	SortOptions  []SortOption         `json:"sort_options"`
	Generation   uint64               `json:"generation"`
}

// HomeView is the state of one coin list view: the fetched page keyed by
// limit, plus the filter and sort inputs applied on every render.
type HomeView struct {
	list     *FetchController[int, []domain.CoinSummary]
	currency string

	mu     sync.RWMutex
	filter string
	sort   domain.SortKey
}

func NewHomeView(source domain.MarketDataSource, cfg ViewConfig) *HomeView {
	cfg = cfg.withDefaults()
	currency := cfg.VsCurrency

	fetch := func(ctx context.Context, limit int) ([]domain.CoinSummary, error) {
		return source.ListCoins(ctx, domain.ListParams{
			VsCurrency: currency,
			Order:      string(domain.SortMarketCapDesc),
			PerPage:    limit,
			Page:       1,
		})
	}

	v := &HomeView{
		list: NewFetchController(fetch, ControllerOptions{
			Name:    "coin-list",
			Timeout: cfg.Timeout,
			Logger:  cfg.Logger,
		}),
		currency: currency,
		sort:     domain.DefaultSortKey,
	}
	v.list.SetParam(cfg.DefaultLimit)
	return v
}

// ParseLimit parses a page size from user input.
func ParseLimit(raw string) (int, error) {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > domain.MaxLimit {
		return 0, fmt.Errorf("%w: %q (must be 1..%d)", domain.ErrInvalidLimit, raw, domain.MaxLimit)
	}
	return limit, nil
}

// SetLimit changes the page size, refetching if it differs from the current one.
func (v *HomeView) SetLimit(limit int) error {
	if limit < 1 || limit > domain.MaxLimit {
		return fmt.Errorf("%w: %d (must be 1..%d)", domain.ErrInvalidLimit, limit, domain.MaxLimit)
	}
	v.list.SetParam(limit)
	return nil
}

func (v *HomeView) SetFilter(filter string) {
	v.mu.Lock()
	v.filter = filter
	v.mu.Unlock()
}

func (v *HomeView) SetSort(raw string) error {
	key, err := domain.ParseSortKey(raw)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.sort = key
	v.mu.Unlock()
	return nil
}

func (v *HomeView) Refresh() { v.list.Refresh() }

// Wait blocks until the outstanding list request settles.
func (v *HomeView) Wait(ctx context.Context) error {
	_, err := v.list.Wait(ctx)
	return err
}

// OnChange calls fn after every fetch transition.
func (v *HomeView) OnChange(fn func()) {
	v.list.Subscribe(func(FetchState[int, []domain.CoinSummary]) { fn() })
}

func (v *HomeView) Close() { v.list.Close() }

// Render builds the view model from the current raw data and inputs.
func (v *HomeView) Render() HomeViewModel {
	st := v.list.State()

	v.mu.RLock()
	filter, sortKey := v.filter, v.sort
	v.mu.RUnlock()

	vm := HomeViewModel{
		Loading:      st.Loading,
		Error:        st.Err,
		Currency:     v.currency,
		Limit:        st.Param,
		Filter:       filter,
		Sort:         sortKey,
		LimitOptions: domain.LimitOptions,
		Generation:   st.Generation,
		Coins:        []domain.CoinSummary{},
	}
	for _, k := range domain.SortKeys {
		vm.SortOptions = append(vm.SortOptions, SortOption{Key: k, Label: k.Label(), Selected: k == sortKey})
	}

	if st.HasData {
		vm.Total = len(st.Data)
		// sortKey is validated by SetSort, so this cannot fail.
		coins, _ := BuildViewModel(st.Data, filter, sortKey)
		vm.Coins = coins
	}
	vm.Empty = !vm.Loading && vm.Error == "" && len(vm.Coins) == 0
	return vm
}
