package qa

import (
	"context"
	"log/slog"
)

// Service exposes the question and answer workflows.
type Service interface {
	ListQuestions(ctx context.Context, page Pagination) ([]Question, error)
	AddQuestion(ctx context.Context, question NewQuestion) (Question, error)
	UpdateQuestion(ctx context.Context, id int64, question Question) (Question, error)
	DeleteQuestion(ctx context.Context, id int64) error

	ListAnswers(ctx context.Context, page Pagination) ([]Answer, error)
	AddAnswer(ctx context.Context, answer NewAnswer) (Answer, error)
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the Q&A domain.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "qa.service"),
	}
}

func (s *service) ListQuestions(ctx context.Context, page Pagination) ([]Question, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	s.logger.Debug("querying questions", "paginated", page != nil)

	questions, err := s.repo.ListQuestions(ctx, page)
	if err != nil {
		return nil, s.fail("list questions", err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *service) AddQuestion(ctx context.Context, question NewQuestion) (Question, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	created, err := s.repo.InsertQuestion(ctx, question)
	if err != nil {
		return Question{}, s.fail("insert question", err)
	}
	s.logger.Info("question added", "question_id", created.ID)
	return created, nil
}

func (s *service) UpdateQuestion(ctx context.Context, id int64, question Question) (Question, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	question.ID = id
	updated, err := s.repo.UpdateQuestion(ctx, id, question)
	if err != nil {
		return Question{}, s.fail("update question", err)
	}
	return updated, nil
}

func (s *service) DeleteQuestion(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		return s.fail("delete question", err)
	}
	s.logger.Info("question deleted", "question_id", id)
	return nil
}

func (s *service) ListAnswers(ctx context.Context, page Pagination) ([]Answer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	s.logger.Debug("querying answers", "paginated", page != nil)

	answers, err := s.repo.ListAnswers(ctx, page)
	if err != nil {
		return nil, s.fail("list answers", err)
	}
	if answers == nil {
		answers = []Answer{}
	}
	return answers, nil
}

func (s *service) AddAnswer(ctx context.Context, answer NewAnswer) (Answer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	created, err := s.repo.InsertAnswer(ctx, answer)
	if err != nil {
		return Answer{}, s.fail("insert answer", err)
	}
	s.logger.Info("answer added", "answer_id", created.ID, "question_id", created.QuestionID)
	return created, nil
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}

// fail passes taxonomy errors through and wraps everything else as a
// storage error, logging the cause where it happened.
func (s *service) fail(operation string, err error) error {
	if IsTaxonomy(err) {
		return err
	}
	s.logger.Error("storage operation failed", "operation", operation, "error", err)
	return StorageError(err)
}
