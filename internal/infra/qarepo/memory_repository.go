package qarepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/qa-service/internal/domain/qa"
)

// MemoryRepository is an in-process qa.Repository. Both collections live
// behind one reader/writer lock; every method is its own critical section.
type MemoryRepository struct {
	mu sync.RWMutex

	questions      map[int64]qa.Question
	answers        map[int64]qa.Answer
	nextQuestionID int64
	nextAnswerID   int64
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		questions:      make(map[int64]qa.Question),
		answers:        make(map[int64]qa.Answer),
		nextQuestionID: 1,
		nextAnswerID:   1,
	}
}

// ListQuestions returns questions in ascending ID order, windowed by page.
func (r *MemoryRepository) ListQuestions(_ context.Context, page qa.Pagination) ([]qa.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedKeys(r.questions)
	lo, hi, err := window(page, len(ids))
	if err != nil {
		return nil, err
	}
	out := make([]qa.Question, 0, hi-lo)
	for _, id := range ids[lo:hi] {
		out = append(out, r.questions[id].Clone())
	}
	return out, nil
}

// InsertQuestion assigns the next identifier and stores the question.
func (r *MemoryRepository) InsertQuestion(_ context.Context, question qa.NewQuestion) (qa.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextQuestionID
	r.nextQuestionID++

	record := qa.Question{
		ID:      id,
		Title:   question.Title,
		Content: question.Content,
		Tags:    question.Tags,
	}.Clone()
	r.questions[id] = record
	return record.Clone(), nil
}

// UpdateQuestion replaces the stored question in place.
func (r *MemoryRepository) UpdateQuestion(_ context.Context, id int64, question qa.Question) (qa.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return qa.Question{}, qa.ErrItemNotFound
	}
	record := question.Clone()
	record.ID = id
	r.questions[id] = record
	return record.Clone(), nil
}

// DeleteQuestion removes the question or reports qa.ErrItemNotFound.
func (r *MemoryRepository) DeleteQuestion(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return qa.ErrItemNotFound
	}
	delete(r.questions, id)
	return nil
}

// ListAnswers returns answers in ascending ID order, windowed by page.
func (r *MemoryRepository) ListAnswers(_ context.Context, page qa.Pagination) ([]qa.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedKeys(r.answers)
	lo, hi, err := window(page, len(ids))
	if err != nil {
		return nil, err
	}
	out := make([]qa.Answer, 0, hi-lo)
	for _, id := range ids[lo:hi] {
		out = append(out, r.answers[id])
	}
	return out, nil
}

// InsertAnswer assigns the next identifier and stores the answer.
func (r *MemoryRepository) InsertAnswer(_ context.Context, answer qa.NewAnswer) (qa.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextAnswerID
	r.nextAnswerID++

	record := qa.Answer{
		ID:         id,
		Content:    answer.Content,
		QuestionID: answer.QuestionID,
	}
	r.answers[id] = record
	return record, nil
}

func window(page qa.Pagination, length int) (int, int, error) {
	if page == nil {
		return 0, length, nil
	}
	return page.Window(length)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

var _ qa.Repository = (*MemoryRepository)(nil)
