package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloakshay27/hi-society-backend-go/internal/domain/checklist"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type checklistRepositoryImpl struct {
	db *database.DB
}

func NewChecklistRepository(db *database.DB) checklist.Repository {
	return &checklistRepositoryImpl{db: db}
}

// ListByCheckType implements checklist.Repository.
func (r *checklistRepositoryImpl) ListByCheckType(ctx context.Context, checkType string) ([]checklist.Checklist, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, check_type, created_at, updated_at
		FROM snag_checklists
		WHERE check_type = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, checkType)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklists: %w", err)
	}
	defer rows.Close()

	var checklists []checklist.Checklist
	for rows.Next() {
		var c checklist.Checklist
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CheckType,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist: %w", err)
		}
		checklists = append(checklists, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return checklists, nil
}

// GetByID implements checklist.Repository.
func (r *checklistRepositoryImpl) GetByID(ctx context.Context, id int64) (checklist.Checklist, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, check_type, created_at, updated_at
		FROM snag_checklists
		WHERE id = $1
	`

	var result checklist.Checklist
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.CheckType,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checklist.Checklist{}, checklist.ErrChecklistNotFound
		}
		return checklist.Checklist{}, fmt.Errorf("failed to get checklist: %w", err)
	}

	questions, err := r.questionsByChecklistID(ctx, id)
	if err != nil {
		return checklist.Checklist{}, err
	}
	result.Questions = questions

	return result, nil
}

func (r *checklistRepositoryImpl) questionsByChecklistID(ctx context.Context, checklistID int64) ([]checklist.Question, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT q.id, q.descr, q.qtype, q.quest_mandatory,
			COALESCE(array_agg(o.qname ORDER BY o.id) FILTER (WHERE o.id IS NOT NULL), '{}')
		FROM snag_questions q
		LEFT JOIN snag_quest_options o ON o.snag_question_id = q.id
		WHERE q.snag_checklist_id = $1
		GROUP BY q.id, q.descr, q.qtype, q.quest_mandatory
		ORDER BY q.id ASC
	`

	rows, err := q.Query(ctx, query, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist questions: %w", err)
	}
	defer rows.Close()

	var questions []checklist.Question
	for rows.Next() {
		var question checklist.Question
		err := rows.Scan(
			&question.ID,
			&question.Descr,
			&question.QType,
			&question.Mandatory,
			&question.Options,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist question: %w", err)
		}
		questions = append(questions, question)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return questions, nil
}
