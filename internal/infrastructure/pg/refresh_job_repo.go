package pg

import (
	"context"
	"errors"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
	"cryptorates-service/internal/infrastructure/logx"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RefreshJobRepo struct{ db *DB }

func NewRefreshJobRepo(db *DB) *RefreshJobRepo { return &RefreshJobRepo{db: db} }

func (r *RefreshJobRepo) CreateQueued(ctx context.Context, pair string, _ *string) (string, error) {
	id := uuid.NewString()
	const ins = `
        INSERT INTO refresh_jobs(id, pair, status)
        VALUES ($1, $2, 'queued')`
	log := logx.L().With(
		zap.String("repo", "refresh_job"),
		zap.String("operation", "CreateQueued"),
		zap.String("id", id),
		zap.String("pair", pair),
	)
	tag, err := r.db.querier(ctx).Exec(ctx, ins, id, pair)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return "", err
	}
	log.Info("sql.exec_success", zap.Int64("rows_affected", tag.RowsAffected()))
	return id, nil
}

func (r *RefreshJobRepo) GetByID(ctx context.Context, id string) (domain.MarketRefresh, error) {
	const q = `
        SELECT id::text, pair, status, error, COALESCE(completed_at, requested_at)
        FROM refresh_jobs WHERE id=$1`
	var out domain.MarketRefresh
	var errMsg *string
	var status string
	err := r.db.querier(ctx).QueryRow(ctx, q, id).Scan(&out.ID, &out.Pair, &status, &errMsg, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MarketRefresh{}, application.ErrNotFound
	}
	if err != nil {
		logx.L().Error("sql.query_failed",
			zap.String("repo", "refresh_job"),
			zap.String("operation", "GetByID"),
			zap.String("id", id),
			zap.Error(err),
		)
		return domain.MarketRefresh{}, err
	}
	out.Error = errMsg
	out.Status = parseStatus(status)
	return out, nil
}

func (r *RefreshJobRepo) UpdateStatus(ctx context.Context, id string, st domain.RefreshStatus, errMsg *string) error {
	const up = `
        UPDATE refresh_jobs
        SET status=$2,
            error=$3,
            completed_at = CASE WHEN $2 IN ('done','failed') THEN NOW() ELSE completed_at END
        WHERE id=$1`
	log := logx.L().With(
		zap.String("repo", "refresh_job"),
		zap.String("operation", "UpdateStatus"),
		zap.String("id", id),
		zap.String("status", string(st)),
	)
	tag, err := r.db.querier(ctx).Exec(ctx, up, id, string(st), errMsg)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		log.Warn("sql.exec_no_rows")
		return application.ErrNotFound
	}
	return nil
}

func (r *RefreshJobRepo) ClaimQueued(ctx context.Context, limit int) ([]application.QueuedRefresh, error) {
	const q = `
      WITH cte AS (
        SELECT id
        FROM refresh_jobs
        WHERE status = 'queued'
        ORDER BY requested_at
        LIMIT $1
        FOR UPDATE SKIP LOCKED
      )
      UPDATE refresh_jobs j
      SET status = 'processing'
      FROM cte
      WHERE j.id = cte.id
      RETURNING j.id::text, j.pair;
    `
	rows, err := r.db.querier(ctx).Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []application.QueuedRefresh
	for rows.Next() {
		var j application.QueuedRefresh
		if err := rows.Scan(&j.ID, &j.Pair); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func parseStatus(s string) domain.RefreshStatus {
	switch s {
	case "queued":
		return domain.RefreshStatusQueued
	case "processing":
		return domain.RefreshStatusProcessing
	case "done":
		return domain.RefreshStatusDone
	default:
		return domain.RefreshStatusFailed
	}
}
