package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trivialabs/trivia-api/internal/trivia"
)

const questionColumns = `id, question, answer, category, difficulty`

// QuestionRepository implements the question store over Postgres. All list
// queries return rows in id order, the canonical order for pagination.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) ListAll(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return scanQuestions(rows)
}

// Insert stores a new question and returns it with the assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, input trivia.QuestionInput) (trivia.Question, error) {
	question := trivia.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, input.Question, input.Answer, input.Category, input.Difficulty).Scan(&question.ID)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return question, nil
}

// DeleteByID removes a question and reports whether a row existed. A missing
// id is not an error; the caller decides whether absence matters.
func (r *QuestionRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SearchByQuestion matches the term case-insensitively anywhere in the
// question text. An empty term matches every question.
func (r *QuestionRepository) SearchByQuestion(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return scanQuestions(rows)
}

// ListExcluding returns every question whose id is not in the excluded set,
// optionally scoped to one category.
func (r *QuestionRepository) ListExcluding(ctx context.Context, excludedIDs []int, categoryID *int) ([]trivia.Question, error) {
	excluded := make([]int32, len(excludedIDs))
	for i, id := range excludedIDs {
		excluded[i] = int32(id)
	}

	query := `SELECT ` + questionColumns + ` FROM questions WHERE NOT (id = ANY($1))`
	args := []any{excluded}
	if categoryID != nil {
		query += ` AND category = $2`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz candidates: %w", err)
	}
	return scanQuestions(rows)
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
