package badges

import (
	"context"
	"errors"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ErrBadgeAlreadyEarned is returned by Insert when the badge type hit the
// unique constraint, i.e. it was awarded before.
var ErrBadgeAlreadyEarned = errors.New("badge already earned")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Exists(ctx context.Context, badgeType Type) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.badges.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", badgeType.String()))

	var exists bool
	err = r.db.
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM badge WHERE type = $1)`, badgeType).
		Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) Insert(ctx context.Context, badge Badge) (_ *Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.badges.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", badge.Type.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO badge (type, earned_at)
		VALUES ($1, $2)
		RETURNING id
	`,
		badge.Type,
		badge.EarnedAt,
	).Scan(&badge.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrBadgeAlreadyEarned
		}
		return nil, err
	}
	return &badge, nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.badges.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, type, earned_at
		FROM badge
		ORDER BY earned_at DESC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	badges := make([]Badge, 0)
	for rows.Next() {
		var badge Badge
		if err := rows.Scan(&badge.ID, &badge.Type, &badge.EarnedAt); err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}

	return badges, nil
}
