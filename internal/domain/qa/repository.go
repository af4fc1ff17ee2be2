package qa

import "context"

// Repository is the storage contract shared by the memory and Postgres
// backends. Implementations return ErrItemNotFound, ErrStartGreaterThanEnd
// and ErrEndExceedsLength themselves; any other error is a backend failure.
type Repository interface {
	ListQuestions(ctx context.Context, page Pagination) ([]Question, error)
	InsertQuestion(ctx context.Context, question NewQuestion) (Question, error)
	UpdateQuestion(ctx context.Context, id int64, question Question) (Question, error)
	DeleteQuestion(ctx context.Context, id int64) error

	ListAnswers(ctx context.Context, page Pagination) ([]Answer, error)
	InsertAnswer(ctx context.Context, answer NewAnswer) (Answer, error)
}
