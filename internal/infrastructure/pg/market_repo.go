package pg

import (
	"context"
	"errors"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

type MarketRepo struct{ db *DB }

func NewMarketRepo(db *DB) *MarketRepo { return &MarketRepo{db: db} }

const marketColumns = `pair, price::text,
    COALESCE(change_24h::text, ''), COALESCE(volume_24h::text, ''), quoted_at`

func (r *MarketRepo) Latest(ctx context.Context) ([]domain.MarketQuote, error) {
	rows, err := r.db.querier(ctx).Query(ctx, `
        SELECT `+marketColumns+`
        FROM market_data
        ORDER BY pair`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MarketQuote
	for rows.Next() {
		var q domain.MarketQuote
		if err := rows.Scan(&q.Pair, &q.Price, &q.Change24h, &q.Volume24h, &q.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *MarketRepo) GetPair(ctx context.Context, pair string) (domain.MarketQuote, error) {
	var q domain.MarketQuote
	err := r.db.querier(ctx).QueryRow(ctx, `
        SELECT `+marketColumns+`
        FROM market_data
        WHERE pair=$1`, pair).
		Scan(&q.Pair, &q.Price, &q.Change24h, &q.Volume24h, &q.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MarketQuote{}, application.ErrNotFound
	}
	if err != nil {
		return domain.MarketQuote{}, err
	}
	return q, nil
}

// UpsertBatch replaces the stored record for each pair. Records with
// malformed pairs are skipped; the feed is untrusted input.
func (r *MarketRepo) UpsertBatch(ctx context.Context, quotes []domain.MarketQuote) error {
	const up = `
        INSERT INTO market_data(pair, price, change_24h, volume_24h, quoted_at, updated_at)
        VALUES ($1, $2::numeric, NULLIF($3, '')::numeric, NULLIF($4, '')::numeric, $5, NOW())
        ON CONFLICT (pair) DO UPDATE
          SET price=EXCLUDED.price,
              change_24h=EXCLUDED.change_24h,
              volume_24h=EXCLUDED.volume_24h,
              quoted_at=EXCLUDED.quoted_at,
              updated_at=NOW()`
	q := r.db.querier(ctx)
	for _, m := range quotes {
		if !domain.ValidatePair(m.Pair) {
			continue
		}
		ts := m.Timestamp
		if ts.IsZero() {
			ts = nowUTC()
		}
		if _, err := q.Exec(ctx, up, m.Pair, m.Price, m.Change24h, m.Volume24h, ts); err != nil {
			return err
		}
	}
	return nil
}

func (r *MarketRepo) AppendHistory(ctx context.Context, h domain.MarketHistory) error {
	_, err := r.db.querier(ctx).Exec(ctx, `
        INSERT INTO market_history(pair, price, change_24h, volume_24h, quoted_at, source, refresh_id)
        VALUES ($1, $2::numeric, NULLIF($3, '')::numeric, NULLIF($4, '')::numeric, $5, $6, $7)
        ON CONFLICT (pair, quoted_at, source) DO NOTHING
    `, h.Pair, h.Price, h.Change24h, h.Volume24h, h.QuotedAt, h.Source, h.RefreshID)
	return err
}
