package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// CategoryStore provides read access to the seeded category reference data.
type CategoryStore interface {
	ListAll(ctx context.Context) ([]Category, error)
}

// QuestionStore provides predicate-based question retrieval plus single-row
// insert and delete. ListAll order (id ascending) is the canonical order for
// pagination.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]Question, error)
	Insert(ctx context.Context, input QuestionInput) (Question, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
	SearchByQuestion(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	ListExcluding(ctx context.Context, excludedIDs []int, categoryID *int) ([]Question, error)
}

// CategoryCache defines cache behavior for the category list (implemented by
// the Redis-backed Cache). Get returns nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// Service answers the query intents of the trivia API: listing, paging,
// searching, category scoping, and the non-repeating quiz draw. It holds no
// request state; the store is the single source of truth.
type Service struct {
	categories CategoryStore
	questions  QuestionStore
	cache      CategoryCache
	selector   *Selector
	pageSize   int
	logger     zerolog.Logger
}

type ServiceOptions struct {
	// PageSize is the fixed question window size. Defaults to 10.
	PageSize int
}

func NewService(categories CategoryStore, questions QuestionStore, cache CategoryCache, selector *Selector, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		categories: categories,
		questions:  questions,
		cache:      cache,
		selector:   selector,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListCategories returns every category. An empty store is ErrNotFound.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return categories, nil
}

// ListQuestions returns the requested page over all questions in id order,
// along with the full question count and the category id-to-type map. An
// empty window is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.ListAll(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	window := Paginate(all, page, s.pageSize)
	if len(window) == 0 {
		return QuestionPage{}, ErrNotFound
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	categoryMap := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryMap[c.ID] = c.Type
	}

	return QuestionPage{
		Questions:      window,
		TotalQuestions: len(all),
		Categories:     categoryMap,
	}, nil
}

// DeleteQuestion removes a question by id. A missing id is ErrNotFound; the
// store itself never errors on absence.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	deleted, err := s.questions.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if !deleted {
		return ErrNotFound
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// AddQuestion validates all four fields before any store call; a
// partially-valid row is never inserted.
func (s *Service) AddQuestion(ctx context.Context, input QuestionInput) (Question, error) {
	if err := validateQuestionInput(input); err != nil {
		return Question{}, err
	}
	question, err := s.questions.Insert(ctx, input)
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int("question_id", question.ID).Int("category", question.Category).Msg("question added")
	return question, nil
}

// SearchQuestions returns the requested page over all questions whose text
// contains the term, case-insensitively. An empty term matches everything.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	matches, err := s.questions.SearchByQuestion(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search questions: %w", err)
	}
	window := Paginate(matches, page, s.pageSize)
	if len(window) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{
		Questions:      window,
		TotalQuestions: len(matches),
	}, nil
}

// ListByCategory returns the requested page over one category's questions.
// An unknown category and a category with no questions both produce
// ErrNotFound; existence is not checked separately.
func (s *Service) ListByCategory(ctx context.Context, categoryID, page int) (QuestionPage, error) {
	selection, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	window := Paginate(selection, page, s.pageSize)
	if len(window) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{
		Questions:       window,
		TotalQuestions:  len(selection),
		CurrentCategory: &categoryID,
	}, nil
}

// DrawQuizQuestion picks one question at random that is not among the
// previously served ids, optionally scoped to a category (0 = unscoped).
// A nil question with a nil error signals exhaustion, never ErrNotFound.
func (s *Service) DrawQuizQuestion(ctx context.Context, previousIDs []int, categoryID int) (*Question, error) {
	var scope *int
	if categoryID != 0 {
		scope = &categoryID
	}
	candidates, err := s.questions.ListExcluding(ctx, previousIDs, scope)
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	question, ok := s.selector.PickNext(candidates)
	if !ok {
		return nil, nil
	}
	return &question, nil
}

// loadCategories reads through the cache when one is configured. Cache
// failures degrade to the store and never fail the request.
func (s *Service) loadCategories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if s.cache != nil && len(categories) > 0 {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func validateQuestionInput(input QuestionInput) error {
	if input.Question == "" {
		return fmt.Errorf("%w: question is required", ErrValidation)
	}
	if input.Answer == "" {
		return fmt.Errorf("%w: answer is required", ErrValidation)
	}
	if input.Category == 0 {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if input.Difficulty == 0 {
		return fmt.Errorf("%w: difficulty is required", ErrValidation)
	}
	return nil
}
