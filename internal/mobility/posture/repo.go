package posture

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("posture session not found")

type SessionParams struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.posture.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO posture_session (started_at, duration_seconds, good_posture_pct)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		session.StartedAt,
		session.DurationSeconds,
		session.GoodPosturePct,
	).Scan(&session.ID)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.posture.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM posture_session WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListAll returns posture sessions matching the given params, most recent
// first. A Limit of 0 means no limit.
func (r *Repo) ListAll(ctx context.Context, params SessionParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.posture.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", params.Limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, started_at, duration_seconds, good_posture_pct
		FROM posture_session
		WHERE ($1::timestamp IS NULL OR started_at >= $1)
		  AND ($2::timestamp IS NULL OR started_at <= $2)
		ORDER BY started_at DESC
		LIMIT NULLIF($3, 0);
	`,
		params.From, params.To, params.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions := make([]Session, 0)
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.DurationSeconds, &s.GoodPosturePct); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
