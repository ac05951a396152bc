package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
	"cryptorates-service/internal/infrastructure/httpx"
	"cryptorates-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const marketPath = "/api/market"

// MarketFeed pulls the quote list from the upstream market-data service.
type MarketFeed struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.MarketProvider = (*MarketFeed)(nil)

// feedRecord is the upstream wire shape. Timestamp arrives as a string and
// may be absent or malformed; price fields stay decimal strings end to end.
type feedRecord struct {
	Pair      string `json:"pair"`
	Price     string `json:"price"`
	Change24h string `json:"change_24h"`
	Volume24h string `json:"volume_24h"`
	Timestamp string `json:"timestamp"`
}

func (p *MarketFeed) Fetch(ctx context.Context) ([]domain.MarketQuote, error) {
	if p.BaseURL == "" {
		return nil, errors.New("marketfeed: missing configuration")
	}
	var records []feedRecord
	if err := p.get(ctx, marketPath, &records); err != nil {
		return nil, err
	}
	return p.convert(records), nil
}

func (p *MarketFeed) FetchPair(ctx context.Context, pair string) (domain.MarketQuote, error) {
	if p.BaseURL == "" {
		return domain.MarketQuote{}, errors.New("marketfeed: missing configuration")
	}
	if !domain.ValidatePair(pair) {
		return domain.MarketQuote{}, fmt.Errorf("marketfeed: %w: %q", domain.ErrInvalidPair, pair)
	}
	var rec feedRecord
	if err := p.get(ctx, marketPath+"/"+url.PathEscape(pair), &rec); err != nil {
		return domain.MarketQuote{}, err
	}
	quotes := p.convert([]feedRecord{rec})
	if len(quotes) == 0 {
		return domain.MarketQuote{}, fmt.Errorf("marketfeed: malformed record for %s", pair)
	}
	return quotes[0], nil
}

// get requests an already-escaped path suffix below the base URL.
func (p *MarketFeed) get(ctx context.Context, path string, out any) error {
	if _, err := url.Parse(p.BaseURL); err != nil {
		return fmt.Errorf("marketfeed: invalid base url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(p.BaseURL, "/")+path, nil)
	if err != nil {
		return fmt.Errorf("marketfeed: create request: %w", err)
	}
	client := p.Client
	if client == nil {
		client = &httpx.Client{HTTP: &http.Client{Timeout: 4 * time.Second}, Token: p.APIKey}
	}
	if err := client.DoJSON(ctx, req, out); err != nil {
		return fmt.Errorf("marketfeed: %w", err)
	}
	return nil
}

// convert filters the wire records down to usable quotes. Malformed pairs
// are skipped, not fatal: the feed refreshes on a timer and a transiently
// inconsistent payload must not take the snapshot down.
func (p *MarketFeed) convert(records []feedRecord) []domain.MarketQuote {
	out := make([]domain.MarketQuote, 0, len(records))
	for _, r := range records {
		if !domain.ValidatePair(r.Pair) {
			logx.L().Warn("marketfeed.skip_record", zap.String("pair", r.Pair))
			continue
		}
		q := domain.MarketQuote{
			Pair:      r.Pair,
			Price:     r.Price,
			Change24h: r.Change24h,
			Volume24h: r.Volume24h,
		}
		if ts, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
			q.Timestamp = ts
		}
		out = append(out, q)
	}
	return out
}
