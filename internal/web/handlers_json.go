package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vitos/crypto_dash/internal/domain"
	"github.com/vitos/crypto_dash/internal/usecase"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) handleListCoinsJSON(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseHomeQuery(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	vm := s.renderHome(r.Context(), q)
	status := http.StatusOK
	switch {
	case vm.Loading:
		status = http.StatusGatewayTimeout
	case vm.Error != "":
		status = http.StatusBadGateway
	}
	s.writeJSON(w, status, vm)
}

func (s *Server) handleCoinJSON(w http.ResponseWriter, r *http.Request) {
	view := usecase.NewDetailView(s.source, s.viewCfg)
	defer view.Close()

	if err := view.SetCoin(r.PathValue("id")); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	_ = view.Wait(r.Context())

	vm := view.Render()
	s.writeJSON(w, detailStatus(vm), vm)
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: domain.ErrEmptyCoinID.Error()})
		return
	}

	chart := usecase.NewChartController(s.source, s.viewCfg)
	defer chart.Close()
	chart.SetParam(id)
	st, _ := chart.Wait(r.Context())

	var statusErr *domain.StatusError
	switch {
	case st.Loading:
		s.writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "chart is still loading"})
	case errors.As(st.Cause, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: st.Err})
	case st.Err != "":
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: st.Err})
	default:
		s.writeJSON(w, http.StatusOK, st.Data)
	}
}

func detailStatus(vm usecase.DetailViewModel) int {
	switch {
	case vm.NotFound:
		return http.StatusNotFound
	case vm.Loading:
		return http.StatusGatewayTimeout
	case vm.Error != "":
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
