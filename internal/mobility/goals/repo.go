package goals

import (
	"context"
	"errors"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"
	"github.com/2beens/mobilitystats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type GoalParams struct {
	Type   *Type
	Status *Status
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", goal.Type.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO goal
			(type, title, exercise_id, unit, start_value, target_value, deadline, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		goal.Type, goal.Title, goal.ExerciseID, goal.Unit,
		goal.StartValue, goal.TargetValue, goal.Deadline,
		goal.Status, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, type, title, exercise_id, unit, start_value, target_value, deadline, status, created_at
		FROM goal
		WHERE id = $1;
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, err
	}
	if len(goals) != 1 {
		return nil, ErrGoalNotFound
	}
	return &goals[0], nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id int, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.updatestatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(ctx, `UPDATE goal SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) ListAll(ctx context.Context, params GoalParams) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, type, title, exercise_id, unit, start_value, target_value, deadline, status, created_at
		FROM goal
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC;
	`,
		params.Type, params.Status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2goals(rows)
}

func (r *Repo) CountByStatus(ctx context.Context, status Status) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.countbystatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.
		QueryRow(ctx, `SELECT COUNT(*) FROM goal WHERE status = $1`, status).
		Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) AddProgress(ctx context.Context, entry ProgressEntry) (_ *ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.addprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", entry.GoalID))

	err = r.db.QueryRow(ctx, `
		INSERT INTO goal_progress (goal_id, value, recorded_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		entry.GoalID, entry.Value, entry.RecordedAt,
	).Scan(&entry.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ProgressHistory returns the logged measurements of one goal, oldest first.
func (r *Repo) ProgressHistory(ctx context.Context, goalID int) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mobility.goals.progresshistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	rows, err := r.db.Query(ctx, `
		SELECT id, goal_id, value, recorded_at
		FROM goal_progress
		WHERE goal_id = $1
		ORDER BY recorded_at ASC;
	`, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]ProgressEntry, 0)
	for rows.Next() {
		var entry ProgressEntry
		if err := rows.Scan(&entry.ID, &entry.GoalID, &entry.Value, &entry.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func rows2goals(rows pgx.Rows) ([]Goal, error) {
	goals := make([]Goal, 0)
	for rows.Next() {
		var goal Goal
		if err := rows.Scan(
			&goal.ID, &goal.Type, &goal.Title, &goal.ExerciseID, &goal.Unit,
			&goal.StartValue, &goal.TargetValue, &goal.Deadline,
			&goal.Status, &goal.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, nil
}
