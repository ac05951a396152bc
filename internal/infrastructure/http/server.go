package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
	"cryptorates-service/internal/infrastructure/http/openapi"
)

type Server struct {
	svc         *application.QuoteService
	ping        func(ctx context.Context) error
	streamEvery time.Duration
}

func NewServer(svc *application.QuoteService) *Server { return &Server{svc: svc} }

// SetReadyCheck wires the readiness probe to a dependency ping (usually the
// postgres pool).
func (s *Server) SetReadyCheck(ping func(ctx context.Context) error) { s.ping = ping }

func (s *Server) GetMarket(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.svc.Market(r.Context())
	if err != nil {
		internalError(w)
		return
	}
	resp := make([]openapi.MarketQuote, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, toWireQuote(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetMarketPair(w http.ResponseWriter, r *http.Request, base string, quote string) {
	pair := string(domain.MakePair(strings.ToUpper(base), strings.ToUpper(quote)))
	q, err := s.svc.MarketPair(r.Context(), pair)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrBadRequest):
			writeError(w, http.StatusBadRequest, "invalid pair")
		case errors.Is(err, application.ErrNotFound):
			notFound(w)
		default:
			internalError(w)
		}
		return
	}
	writeJSON(w, http.StatusOK, toWireQuote(q))
}

func (s *Server) GetAssets(w http.ResponseWriter, r *http.Request) {
	c := s.svc.Assets(r.Context())
	resp := openapi.AssetCatalog{Cryptos: c.Cryptos, Fiats: c.Fiats, All: c.All}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetRate(w http.ResponseWriter, r *http.Request, params openapi.GetRateParams) {
	from, to := strings.ToUpper(params.From), strings.ToUpper(params.To)
	res, err := s.svc.Rate(r.Context(), from, to)
	if err != nil {
		internalError(w)
		return
	}
	resp := openapi.RateResponse{From: res.From, To: res.To, Rate: res.Rate, Available: res.Available}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request, params openapi.GetQuoteParams) {
	amount, err := strconv.ParseFloat(params.Amount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	from, to := strings.ToUpper(params.From), strings.ToUpper(params.To)
	res, err := s.svc.Quote(r.Context(), from, to, amount)
	if err != nil {
		internalError(w)
		return
	}
	prec := s.svc.Params().Precision
	resp := openapi.QuoteResponse{
		From:            res.From,
		To:              res.To,
		FromAmount:      res.FromAmount,
		ToAmount:        res.ToAmount,
		Rate:            res.Rate,
		Fee:             res.Fee,
		ToAmountDisplay: prec.FormatAmount(to, res.ToAmount),
		FeeDisplay:      prec.FormatAmount(to, res.Fee),
		MaxSubmittable:  domain.FloorToDecimals(res.ToAmount, prec.DecimalsFor(to)),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) RequestMarketRefresh(w http.ResponseWriter, r *http.Request, params openapi.RequestMarketRefreshParams) {
	var body openapi.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	id, err := s.svc.RequestRefresh(r.Context(), strings.ToUpper(body.Pair), params.XIdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrBadRequest):
			writeError(w, http.StatusBadRequest, "invalid pair")
		case errors.Is(err, application.ErrConflict):
			writeError(w, http.StatusConflict, "duplicate idempotency key")
		default:
			internalError(w)
		}
		return
	}
	writeJSON(w, http.StatusAccepted, openapi.RefreshAccepted{RefreshId: id})
}

func (s *Server) GetMarketRefresh(w http.ResponseWriter, r *http.Request, id string) {
	job, err := s.svc.RefreshStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			notFound(w)
			return
		}
		internalError(w)
		return
	}
	resp := openapi.RefreshDetails{
		RefreshId: job.ID,
		Pair:      string(job.Pair),
		Status:    mapStatus(job.Status),
		Error:     job.Error,
		UpdatedAt: job.UpdatedAt,
	}
	writeJSON(w, http.StatusOK, resp)
}

func toWireQuote(q domain.MarketQuote) openapi.MarketQuote {
	return openapi.MarketQuote{
		Pair:      q.Pair,
		Price:     q.Price,
		Change24h: q.Change24h,
		Volume24h: q.Volume24h,
		Timestamp: q.Timestamp,
	}
}

func mapStatus(s domain.RefreshStatus) openapi.RefreshDetailsStatus {
	switch s {
	case domain.RefreshStatusProcessing:
		return openapi.Processing
	case domain.RefreshStatusDone:
		return openapi.Done
	case domain.RefreshStatusFailed:
		return openapi.Failed
	default:
		return openapi.Queued
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorEnvelope{Code: status, Message: msg})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
