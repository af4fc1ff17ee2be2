package qa

// Question is a persisted question row.
type Question struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// NewQuestion is the client payload for creating a question.
type NewQuestion struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// Answer is a persisted answer row. QuestionID is not checked against
// existing questions.
type Answer struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	QuestionID int64  `json:"question_id"`
}

// NewAnswer is the client payload for creating an answer.
type NewAnswer struct {
	Content    string `json:"content" binding:"required"`
	QuestionID int64  `json:"question_id" binding:"required"`
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return append([]string(nil), tags...)
}

// Clone returns a copy that shares no memory with q.
func (q Question) Clone() Question {
	q.Tags = cloneTags(q.Tags)
	return q
}
