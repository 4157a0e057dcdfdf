package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type ListParams struct {
	ExerciseID string
	Kind       string
	From       *time.Time
	To         *time.Time
}

type PageParams struct {
	ListParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout
				(performed_at, kind, notes, exercises)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		workout.PerformedAt, workout.Kind, workout.Notes, exercisesJson,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, performed_at, kind, notes, exercises FROM workout WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}

	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &workouts[0], nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// ListAll returns all workouts matching the given params, most recent first.
// Set filtering by exercise happens in Go since exercises live in a JSONB
// column; the params filter only prunes obviously non-matching rows.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", params.ExerciseID))
	span.SetAttributes(attribute.String("kind", params.Kind))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, performed_at, kind, notes, exercises FROM workout
				WHERE ($1::text = '' OR kind = $1)
				AND ($2::timestamp IS NULL OR performed_at >= $2)
				AND ($3::timestamp IS NULL OR performed_at <= $3)
				AND ($4::text = '' OR exercises @> ('[{"exerciseId":"' || $4 || '"}]')::jsonb)
			ORDER BY performed_at DESC;`,
		params.Kind, params.From, params.To, params.ExerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}
	return workouts, nil
}

// List returns one page of workouts, most recent first.
func (r *Repo) List(ctx context.Context, params PageParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.ListParams)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if countAll <= limit {
		limit = countAll
		offset = 0
	}
	if countAll-offset < limit {
		offset = countAll - limit
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, performed_at, kind, notes, exercises FROM workout
				WHERE ($1::text = '' OR kind = $1)
			ORDER BY performed_at DESC
			LIMIT $2
			OFFSET $3;`,
		params.Kind, limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, -1, err
	}
	return workouts, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM workout
			WHERE ($1::text = '' OR kind = $1)
			AND ($2::timestamp IS NULL OR performed_at >= $2)
			AND ($3::timestamp IS NULL OR performed_at <= $3);
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

	return -1, errors.New("unexpected error, failed to get workouts count")
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var id int
		var performedAt time.Time
		var kind string
		var notes string
		var exercisesBytes []byte
		if err := rows.Scan(&id, &performedAt, &kind, &notes, &exercisesBytes); err != nil {
			return nil, err
		}

		w := Workout{
			ID:          id,
			PerformedAt: performedAt,
			Kind:        kind,
			Notes:       notes,
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &w.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for workout %d: %w", id, err)
			}
		}

		workouts = append(workouts, w)
	}

	if workouts == nil {
		workouts = make([]Workout, 0)
	}

	return workouts, nil
}
