package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/vitos/crypto_dash/internal/domain"
	"github.com/vitos/crypto_dash/internal/usecase"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"money":   usecase.FormatMoney,
	"percent": usecase.FormatPercent,
	"upper":   strings.ToUpper,
	"negative": func(v float64) bool {
		return v < 0
	},
	"card": func(c domain.CoinSummary, currency string) coinCard {
		return coinCard{CoinSummary: c, Currency: currency}
	},
}).ParseFS(templateFS, "templates/*.html"))

// coinCard is a list entry together with the currency its prices are in.
type coinCard struct {
	domain.CoinSummary
	Currency string
}

// homeQuery is the list view input taken from the query string.
type homeQuery struct {
	Limit  int
	Filter string
	Sort   domain.SortKey
}

func (s *Server) parseHomeQuery(r *http.Request) (homeQuery, error) {
	q := homeQuery{
		Limit:  s.viewCfg.DefaultLimit,
		Filter: r.URL.Query().Get("filter"),
		Sort:   domain.DefaultSortKey,
	}
	if q.Limit == 0 {
		q.Limit = domain.DefaultLimit
	}

	var errs []error
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := usecase.ParseLimit(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			q.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("sort"); raw != "" {
		key, err := domain.ParseSortKey(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			q.Sort = key
		}
	}
	return q, errors.Join(errs...)
}

// renderHome runs one list view to completion for the request.
func (s *Server) renderHome(ctx context.Context, q homeQuery) usecase.HomeViewModel {
	cfg := s.viewCfg
	cfg.DefaultLimit = q.Limit
	view := usecase.NewHomeView(s.source, cfg)
	defer view.Close()

	view.SetFilter(q.Filter)
	// q.Sort is already validated.
	_ = view.SetSort(string(q.Sort))

	if err := view.Wait(ctx); err != nil {
		s.logger.Warn("list view abandoned", zap.String("request_id", requestID(ctx)), zap.Error(err))
	}
	return view.Render()
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	q, qErr := s.parseHomeQuery(r)
	vm := s.renderHome(r.Context(), q)

	status := http.StatusOK
	if qErr != nil {
		vm.Error = strings.TrimSpace(strings.Join([]string{vm.Error, qErr.Error()}, "\n"))
		status = http.StatusBadRequest
	}
	s.render(w, status, "index.html", vm)
}

func (s *Server) handleCoin(w http.ResponseWriter, r *http.Request) {
	view := usecase.NewDetailView(s.source, s.viewCfg)
	defer view.Close()

	if err := view.SetCoin(r.PathValue("id")); err != nil {
		s.handleNotFound(w, r)
		return
	}
	if err := view.Wait(r.Context()); err != nil {
		s.logger.Warn("detail view abandoned", zap.String("request_id", requestID(r.Context())), zap.Error(err))
	}

	vm := view.Render()
	status := http.StatusOK
	if vm.NotFound {
		status = http.StatusNotFound
	}
	s.render(w, status, "coin.html", vm)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "about.html", nil)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "not_found.html", map[string]string{"Path": r.URL.Path})
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(buf.String()))
}
