// Package memory provides in-memory store implementations used by tests and
// local development. Behavior mirrors the Postgres repositories: id-ordered
// listings, case-insensitive substring search, and delete-by-id that reports
// absence instead of erroring.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/trivialabs/trivia-api/internal/trivia"
)

// CategoryStore holds categories behind an RWMutex.
type CategoryStore struct {
	mu         sync.RWMutex
	categories []trivia.Category
	nextID     int
}

var _ trivia.CategoryStore = (*CategoryStore)(nil)

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{nextID: 1}
}

// Seed appends categories with store-assigned ids and returns them.
func (s *CategoryStore) Seed(types ...string) []trivia.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := make([]trivia.Category, 0, len(types))
	for _, t := range types {
		c := trivia.Category{ID: s.nextID, Type: t}
		s.nextID++
		s.categories = append(s.categories, c)
		seeded = append(seeded, c)
	}
	return seeded
}

func (s *CategoryStore) ListAll(ctx context.Context) ([]trivia.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]trivia.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// QuestionStore holds questions behind an RWMutex.
type QuestionStore struct {
	mu        sync.RWMutex
	questions map[int]trivia.Question
	nextID    int
}

var _ trivia.QuestionStore = (*QuestionStore)(nil)

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{questions: make(map[int]trivia.Question), nextID: 1}
}

// Len reports the current row count.
func (s *QuestionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

func (s *QuestionStore) ListAll(ctx context.Context) ([]trivia.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listWhere(func(trivia.Question) bool { return true }), nil
}

func (s *QuestionStore) Insert(ctx context.Context, input trivia.QuestionInput) (trivia.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := trivia.Question{
		ID:         s.nextID,
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	s.nextID++
	s.questions[q.ID] = q
	return q, nil
}

func (s *QuestionStore) DeleteByID(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return false, nil
	}
	delete(s.questions, id)
	return true, nil
}

func (s *QuestionStore) SearchByQuestion(ctx context.Context, term string) ([]trivia.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	return s.listWhere(func(q trivia.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

func (s *QuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listWhere(func(q trivia.Question) bool {
		return q.Category == categoryID
	}), nil
}

func (s *QuestionStore) ListExcluding(ctx context.Context, excludedIDs []int, categoryID *int) ([]trivia.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excluded := make(map[int]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}
	return s.listWhere(func(q trivia.Question) bool {
		if _, ok := excluded[q.ID]; ok {
			return false
		}
		return categoryID == nil || q.Category == *categoryID
	}), nil
}

// listWhere returns matching questions in id order. Callers hold the lock.
func (s *QuestionStore) listWhere(match func(trivia.Question) bool) []trivia.Question {
	var out []trivia.Question
	for _, q := range s.questions {
		if match(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
