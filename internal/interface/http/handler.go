package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/qa-service/internal/domain/qa"
)

// Handler wires the HTTP transport to the question and answer service.
type Handler struct {
	svc    qa.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc qa.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// ListQuestions returns stored questions, optionally windowed by query parameters.
func (h *Handler) ListQuestions(c *gin.Context) {
	page, err := qa.ExtractPagination(c.Request.URL.Query())
	if err != nil {
		abortWithError(c, err)
		return
	}

	questions, err := h.svc.ListQuestions(c.Request.Context(), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// AddQuestion stores a new question and returns it with its assigned id.
func (h *Handler) AddQuestion(c *gin.Context) {
	var req qa.NewQuestion
	if !h.bind(c, &req) {
		return
	}

	question, err := h.svc.AddQuestion(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// UpdateQuestion replaces the question at the path id. The path id wins over
// any id in the body.
func (h *Handler) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req qa.Question
	if !h.bind(c, &req) {
		return
	}

	question, err := h.svc.UpdateQuestion(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// DeleteQuestion removes the question at the path id.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteQuestion(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Question %d deleted", id)})
}

// ListAnswers returns stored answers, optionally windowed by query parameters.
func (h *Handler) ListAnswers(c *gin.Context) {
	page, err := qa.ExtractPagination(c.Request.URL.Query())
	if err != nil {
		abortWithError(c, err)
		return
	}

	answers, err := h.svc.ListAnswers(c.Request.Context(), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, answers)
}

// AddAnswer stores a new answer.
func (h *Handler) AddAnswer(c *gin.Context) {
	var req qa.NewAnswer
	if !h.bind(c, &req) {
		return
	}

	answer, err := h.svc.AddAnswer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

// RouteNotFound answers requests that matched no route.
func (h *Handler) RouteNotFound(c *gin.Context) {
	abortWithError(c, routeNotFound(nil))
}

func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusUnprocessableEntity, codeInvalidBody, errMessage(err), err))
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, qa.ParseError(err))
		return 0, false
	}
	return id, true
}
