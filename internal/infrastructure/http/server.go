package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cryptostats-service/internal/application"
	"cryptostats-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const (
	msgInvalidCoin      = "Please enter valid Crypto-coin name"
	msgNoData           = "No data found for the requested coin"
	msgInsufficientData = "Not enough data to calculate deviation"
)

var _ ServerInterface = (*Server)(nil)

type Server struct {
	svc  *application.StatsService
	ping func(ctx context.Context) error
}

func NewServer(svc *application.StatsService) *Server { return &Server{svc: svc} }

// SetReadyCheck installs the storage probe used by /readyz.
func (s *Server) SetReadyCheck(ping func(ctx context.Context) error) { s.ping = ping }

type latestStatsResponse struct {
	Message   string      `json:"message"`
	Price     json.Number `json:"price"`
	MarketCap json.Number `json:"marketCap"`
	Change24h json.Number `json:"24hChange"`
}

type deviationResponse struct {
	Deviation float64 `json:"deviation"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) GetLatestCryptoStats(w http.ResponseWriter, r *http.Request, params CoinParams) {
	q, err := s.svc.GetLatestStats(r.Context(), params.CoinOrEmpty())
	if err != nil {
		writeServiceError(w, r, err, msgNoData)
		return
	}
	writeJSON(w, http.StatusOK, latestStatsResponse{
		Message:   fmt.Sprintf("Latest stats for %s are:", q.Coin),
		Price:     json.Number(q.PriceUSD.String()),
		MarketCap: json.Number(q.MarketCapUSD.String()),
		Change24h: json.Number(q.Change24hPercent.String()),
	})
}

func (s *Server) GetCryptoDeviation(w http.ResponseWriter, r *http.Request, params CoinParams) {
	dev, err := s.svc.GetDeviation(r.Context(), params.CoinOrEmpty())
	if err != nil {
		writeServiceError(w, r, err, msgInsufficientData)
		return
	}
	writeJSON(w, http.StatusOK, deviationResponse{Deviation: dev})
}

// writeServiceError maps application errors onto client responses; notFoundMsg
// is used for both ErrNotFound and ErrInsufficientData.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, application.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, msgInvalidCoin)
	case errors.Is(err, application.ErrNotFound), errors.Is(err, application.ErrInsufficientData):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		logx.WithFields(r.Context()).Error("http.internal_error", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
