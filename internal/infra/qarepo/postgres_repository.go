package qarepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yanqian/qa-service/internal/domain/qa"
)

// Querier is the subset of *pgxpool.Pool used by PostgresRepository.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	countQuestionsSQL = `SELECT COUNT(*) FROM questions`
	listQuestionsSQL  = `
		SELECT id, title, content, tags
		FROM questions
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	insertQuestionSQL = `
		INSERT INTO questions (title, content, tags)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, tags
	`
	updateQuestionSQL = `
		UPDATE questions
		SET title = $1, content = $2, tags = $3
		WHERE id = $4
		RETURNING id, title, content, tags
	`
	deleteQuestionSQL = `DELETE FROM questions WHERE id = $1`

	countAnswersSQL = `SELECT COUNT(*) FROM answers`
	listAnswersSQL  = `
		SELECT id, content, question_id
		FROM answers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	insertAnswerSQL = `
		INSERT INTO answers (content, question_id)
		VALUES ($1, $2)
		RETURNING id, content, question_id
	`
)

// PostgresRepository implements qa.Repository using pgx. Each method issues
// independent statements; nothing runs inside a transaction.
type PostgresRepository struct {
	pool Querier
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool Querier) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListQuestions pushes the page into LIMIT/OFFSET.
func (r *PostgresRepository) ListQuestions(ctx context.Context, page qa.Pagination) ([]qa.Question, error) {
	limit, offset, err := r.bounds(ctx, countQuestionsSQL, page)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, listQuestionsSQL, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]qa.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

// InsertQuestion inserts and returns the row with its generated id.
func (r *PostgresRepository) InsertQuestion(ctx context.Context, question qa.NewQuestion) (qa.Question, error) {
	row := r.pool.QueryRow(ctx, insertQuestionSQL, question.Title, question.Content, question.Tags)
	return scanQuestion(row)
}

// UpdateQuestion overwrites the row, reporting qa.ErrItemNotFound when no row matched.
func (r *PostgresRepository) UpdateQuestion(ctx context.Context, id int64, question qa.Question) (qa.Question, error) {
	row := r.pool.QueryRow(ctx, updateQuestionSQL, question.Title, question.Content, question.Tags, id)
	updated, err := scanQuestion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return qa.Question{}, qa.ErrItemNotFound
	}
	return updated, err
}

// DeleteQuestion removes the row, reporting qa.ErrItemNotFound when zero rows were affected.
func (r *PostgresRepository) DeleteQuestion(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, deleteQuestionSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return qa.ErrItemNotFound
	}
	return nil
}

// ListAnswers pushes the page into LIMIT/OFFSET.
func (r *PostgresRepository) ListAnswers(ctx context.Context, page qa.Pagination) ([]qa.Answer, error) {
	limit, offset, err := r.bounds(ctx, countAnswersSQL, page)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, listAnswersSQL, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]qa.Answer, 0)
	for rows.Next() {
		answer, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, rows.Err()
}

// InsertAnswer inserts and returns the row with its generated id.
func (r *PostgresRepository) InsertAnswer(ctx context.Context, answer qa.NewAnswer) (qa.Answer, error) {
	row := r.pool.QueryRow(ctx, insertAnswerSQL, answer.Content, answer.QuestionID)
	return scanAnswer(row)
}

// bounds maps a page onto LIMIT/OFFSET arguments. A nil limit binds NULL,
// which Postgres treats as LIMIT ALL. Index ranges need the row count first
// so the end bound can be checked.
func (r *PostgresRepository) bounds(ctx context.Context, countSQL string, page qa.Pagination) (any, int64, error) {
	switch p := page.(type) {
	case nil:
		return nil, 0, nil
	case qa.LimitOffset:
		var limit any
		if p.Limit != nil {
			limit = int64(*p.Limit)
		}
		return limit, int64(p.Offset), nil
	case qa.IndexRange:
		if p.Start > p.End {
			return nil, 0, qa.ErrStartGreaterThanEnd
		}
		var total int64
		if err := r.pool.QueryRow(ctx, countSQL).Scan(&total); err != nil {
			return nil, 0, err
		}
		if int64(p.End) > total {
			return nil, 0, qa.ErrEndExceedsLength
		}
		return int64(p.End - p.Start), int64(p.Start), nil
	default:
		return nil, 0, errors.New("unsupported pagination")
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (qa.Question, error) {
	var question qa.Question
	if err := row.Scan(&question.ID, &question.Title, &question.Content, &question.Tags); err != nil {
		return qa.Question{}, err
	}
	return question, nil
}

func scanAnswer(row rowScanner) (qa.Answer, error) {
	var answer qa.Answer
	if err := row.Scan(&answer.ID, &answer.Content, &answer.QuestionID); err != nil {
		return qa.Answer{}, err
	}
	return answer, nil
}

var _ qa.Repository = (*PostgresRepository)(nil)
