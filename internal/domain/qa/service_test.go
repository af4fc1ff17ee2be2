package qa

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/qa-service/pkg/errors"
)

func TestService_WrapsBackendFailures(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &stubRepo{err: boom}
	svc := NewService(Config{}, repo, newTestLogger())

	_, err := svc.ListQuestions(context.Background(), nil)
	require.True(t, apperrors.IsCode(err, CodeStorageError))
	require.ErrorIs(t, err, boom)

	_, err = svc.AddQuestion(context.Background(), NewQuestion{Title: "t", Content: "c"})
	require.True(t, apperrors.IsCode(err, CodeStorageError))

	_, err = svc.AddAnswer(context.Background(), NewAnswer{Content: "c", QuestionID: 1})
	require.True(t, apperrors.IsCode(err, CodeStorageError))

	err = svc.DeleteQuestion(context.Background(), 1)
	require.True(t, apperrors.IsCode(err, CodeStorageError))
}

func TestService_PassesTaxonomyThrough(t *testing.T) {
	repo := &stubRepo{err: ErrItemNotFound}
	svc := NewService(Config{}, repo, newTestLogger())

	_, err := svc.UpdateQuestion(context.Background(), 9, Question{Title: "t", Content: "c"})
	require.ErrorIs(t, err, ErrItemNotFound)
	require.False(t, apperrors.IsCode(err, CodeStorageError))

	repo.err = ErrEndExceedsLength
	_, err = svc.ListAnswers(context.Background(), IndexRange{Start: 0, End: 3})
	require.ErrorIs(t, err, ErrEndExceedsLength)
}

func TestService_UpdateUsesPathID(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(Config{}, repo, newTestLogger())

	got, err := svc.UpdateQuestion(context.Background(), 42, Question{ID: 7, Title: "t", Content: "c"})
	require.NoError(t, err)
	require.Equal(t, int64(42), got.ID)
	require.Equal(t, int64(42), repo.lastUpdateID)
}

func TestService_EmptyListsAreNotNil(t *testing.T) {
	svc := NewService(Config{}, &stubRepo{}, newTestLogger())

	questions, err := svc.ListQuestions(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, questions)

	answers, err := svc.ListAnswers(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, answers)
}

func TestService_AppliesQueryTimeout(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(Config{QueryTimeout: time.Minute}, repo, newTestLogger())

	_, err := svc.ListQuestions(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, repo.sawDeadline)

	repo.sawDeadline = false
	svc = NewService(Config{}, repo, newTestLogger())
	_, err = svc.ListQuestions(context.Background(), nil)
	require.NoError(t, err)
	require.False(t, repo.sawDeadline)
}

func TestService_DeadlineExceededIsStorageError(t *testing.T) {
	repo := &stubRepo{block: true}
	svc := NewService(Config{QueryTimeout: 10 * time.Millisecond}, repo, newTestLogger())

	_, err := svc.ListQuestions(context.Background(), nil)
	require.True(t, apperrors.IsCode(err, CodeStorageError))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubRepo struct {
	err          error
	block        bool
	sawDeadline  bool
	lastUpdateID int64
}

func (r *stubRepo) observe(ctx context.Context) error {
	_, r.sawDeadline = ctx.Deadline()
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return r.err
}

func (r *stubRepo) ListQuestions(ctx context.Context, _ Pagination) ([]Question, error) {
	return nil, r.observe(ctx)
}

func (r *stubRepo) InsertQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	if err := r.observe(ctx); err != nil {
		return Question{}, err
	}
	return Question{ID: 1, Title: q.Title, Content: q.Content, Tags: q.Tags}, nil
}

func (r *stubRepo) UpdateQuestion(ctx context.Context, id int64, q Question) (Question, error) {
	r.lastUpdateID = id
	if err := r.observe(ctx); err != nil {
		return Question{}, err
	}
	return q, nil
}

func (r *stubRepo) DeleteQuestion(ctx context.Context, _ int64) error {
	return r.observe(ctx)
}

func (r *stubRepo) ListAnswers(ctx context.Context, _ Pagination) ([]Answer, error) {
	return nil, r.observe(ctx)
}

func (r *stubRepo) InsertAnswer(ctx context.Context, a NewAnswer) (Answer, error) {
	if err := r.observe(ctx); err != nil {
		return Answer{}, err
	}
	return Answer{ID: 1, Content: a.Content, QuestionID: a.QuestionID}, nil
}
