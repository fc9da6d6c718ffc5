package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/trivialabs/trivia-api/internal/logging"
	"github.com/trivialabs/trivia-api/pkg/http/respond"
)

// HTTPHandlers translates the HTTP surface into Service calls and maps error
// kinds back to status codes and the fixed response envelopes.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

type categoryListResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type questionListResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	Categories      map[int]string `json:"categories,omitempty"`
	TotalQuestions  int            `json:"total_questions"`
	CurrentCategory *int           `json:"current_category"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type quizCategory struct {
	ID int `json:"id"`
}

type quizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// Categories handles GET /api/v1/categories.
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w)
		return
	}
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	types := make([]string, len(categories))
	for i, c := range categories {
		types[i] = c.Type
	}
	respond.JSON(w, http.StatusOK, categoryListResponse{Success: true, Categories: types})
}

// Questions handles GET (paginated list) and POST (create) on
// /api/v1/questions.
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.addQuestion(w, r)
	default:
		respond.MethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	result, err := h.service.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      result.Questions,
		Categories:     result.Categories,
		TotalQuestions: result.TotalQuestions,
	})
}

func (h *HTTPHandlers) addQuestion(w http.ResponseWriter, r *http.Request) {
	var input QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadRequest(w)
		return
	}
	if _, err := h.service.AddQuestion(r.Context(), input); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, messageResponse{Success: true, Message: respond.MsgQuestionAdded})
}

// QuestionByID handles DELETE /api/v1/questions/{id}.
func (h *HTTPHandlers) QuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		respond.MethodNotAllowed(w)
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		// Non-numeric ids never match a question resource.
		respond.NotFound(w)
		return
	}
	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, messageResponse{Success: true, Message: respond.MsgQuestionDeleted})
}

// SearchQuestions handles POST /api/v1/questions/search. An empty search
// term matches every question.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.MethodNotAllowed(w)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w)
		return
	}
	page := pageParam(r)
	result, err := h.service.SearchQuestions(r.Context(), req.SearchTerm, page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

// CategoryQuestions handles GET /api/v1/categories/{id}/questions.
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w)
		return
	}
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respond.NotFound(w)
		return
	}
	page := pageParam(r)
	result, err := h.service.ListByCategory(r.Context(), categoryID, page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, questionListResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// Quizzes handles POST /api/v1/quizzes. Exhaustion is a success with a null
// question, distinct from any not-found outcome.
func (h *HTTPHandlers) Quizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.MethodNotAllowed(w)
		return
	}
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w)
		return
	}
	categoryID := 0
	if req.QuizCategory != nil {
		categoryID = req.QuizCategory.ID
	}
	question, err := h.service.DrawQuizQuestion(r.Context(), req.PreviousQuestions, categoryID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, quizResponse{Success: true, Question: question})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.NotFound(w)
	case errors.Is(err, ErrValidation):
		respond.BadRequest(w)
	default:
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("store failure")
		respond.InternalError(w)
	}
}

// pageParam reads the 1-based page number from the query string. Absent or
// malformed values fall back to page 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}
