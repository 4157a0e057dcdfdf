package checkins

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("check-in entry not found")

type EntryParams struct {
	Kind *Kind
	From *time.Time
	To   *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.checkins.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", entry.Kind.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO checkin (kind, value, note, recorded_at, workout_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		entry.Kind,
		entry.Value,
		entry.Note,
		entry.RecordedAt,
		entry.WorkoutID,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.checkins.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	entry := &Entry{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, kind, value, note, recorded_at, workout_id
			FROM checkin
			WHERE id = $1
		`, id).
		Scan(&entry.ID, &entry.Kind, &entry.Value, &entry.Note, &entry.RecordedAt, &entry.WorkoutID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.checkins.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM checkin WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ListAll returns check-in entries matching the given params, most recent
// first.
func (r *Repo) ListAll(ctx context.Context, params EntryParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.checkins.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.Kind != nil {
		span.SetAttributes(attribute.String("kind", params.Kind.String()))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, kind, value, note, recorded_at, workout_id
		FROM checkin
		WHERE ($1::text IS NULL OR kind = $1)
		  AND ($2::timestamp IS NULL OR recorded_at >= $2)
		  AND ($3::timestamp IS NULL OR recorded_at <= $3)
		ORDER BY recorded_at DESC;
	`,
		params.Kind, params.From, params.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Value, &entry.Note, &entry.RecordedAt, &entry.WorkoutID); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *Repo) Count(ctx context.Context, params EntryParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.checkins.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM checkin
			WHERE ($1::text IS NULL OR kind = $1)
			AND ($2::timestamp IS NULL OR recorded_at >= $2)
			AND ($3::timestamp IS NULL OR recorded_at <= $3);
	`,
		params.Kind, params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get check-ins count")
}
