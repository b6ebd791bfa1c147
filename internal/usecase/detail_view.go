package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vitos/crypto_dash/internal/domain"
)

// DetailViewModel is everything the coin detail page renders.
type DetailViewModel struct {
	CoinID       string          `json:"coin_id"`
	Loading      bool            `json:"loading"`
	Error        string          `json:"error,omitempty"`
	Detail       *CoinDetailView `json:"detail,omitempty"`
	NotFound     bool            `json:"not_found"`
	NoData       bool            `json:"no_data"`
	ChartLoading bool            `json:"chart_loading"`
	ChartError   string          `json:"chart_error,omitempty"`
	Chart        *ChartSeries    `json:"chart,omitempty"`
}

// DetailView holds the detail and chart fetches of one coin page.
type DetailView struct {
	currency string
	detail   *FetchController[string, *domain.CoinDetail]
	chart    *FetchController[string, ChartSeries]
}

func NewDetailView(source domain.MarketDataSource, cfg ViewConfig) *DetailView {
	cfg = cfg.withDefaults()
	currency := cfg.VsCurrency

	fetchDetail := func(ctx context.Context, id string) (*domain.CoinDetail, error) {
		return source.GetCoin(ctx, id)
	}
	return &DetailView{
		currency: currency,
		detail: NewFetchController(fetchDetail, ControllerOptions{
			Name:          "coin-detail",
			Timeout:       cfg.Timeout,
			Logger:        cfg.Logger,
			ClearOnChange: true,
		}),
		chart: NewChartController(source, cfg),
	}
}

// NewChartController fetches the trailing price chart of a coin id.
func NewChartController(source domain.MarketDataSource, cfg ViewConfig) *FetchController[string, ChartSeries] {
	cfg = cfg.withDefaults()
	currency := cfg.VsCurrency

	fetch := func(ctx context.Context, id string) (ChartSeries, error) {
		chart, err := source.GetMarketChart(ctx, id, currency, ChartWindowDays)
		if err != nil {
			return ChartSeries{}, err
		}
		return AdaptChart(*chart, currency), nil
	}
	return NewFetchController(fetch, ControllerOptions{
		Name:          "coin-chart",
		Timeout:       cfg.Timeout,
		Logger:        cfg.Logger,
		ClearOnChange: true,
	})
}

// SetCoin navigates the view to id, fetching detail and chart when it changes.
func (v *DetailView) SetCoin(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrEmptyCoinID
	}
	v.detail.SetParam(id)
	v.chart.SetParam(id)
	return nil
}

func (v *DetailView) Refresh() {
	v.detail.Refresh()
	v.chart.Refresh()
}

// Wait blocks until both requests settle.
func (v *DetailView) Wait(ctx context.Context) error {
	_, errDetail := v.detail.Wait(ctx)
	_, errChart := v.chart.Wait(ctx)
	return errors.Join(errDetail, errChart)
}

func (v *DetailView) Close() {
	v.detail.Close()
	v.chart.Close()
}

func (v *DetailView) Render() DetailViewModel {
	d := v.detail.State()
	c := v.chart.State()

	vm := DetailViewModel{
		CoinID:       d.Param,
		Loading:      d.Loading,
		Error:        d.Err,
		ChartLoading: c.Loading,
		ChartError:   c.Err,
	}
	if d.HasData && d.Data != nil {
		view := AssembleDetail(*d.Data, v.currency)
		vm.Detail = &view
	}
	if c.HasData {
		series := c.Data
		vm.Chart = &series
	}
	var statusErr *domain.StatusError
	vm.NotFound = errors.As(d.Cause, &statusErr) && statusErr.StatusCode == http.StatusNotFound
	vm.NoData = !vm.Loading && vm.Error == "" && vm.Detail == nil
	return vm
}
