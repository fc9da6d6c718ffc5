package trivia_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trivialabs/trivia-api/internal/db/memory"
	"github.com/trivialabs/trivia-api/internal/trivia"
)

type memoryCategoryCache struct {
	categories []trivia.Category
	sets       int
}

func (c *memoryCategoryCache) Get(context.Context) ([]trivia.Category, error) {
	return c.categories, nil
}

func (c *memoryCategoryCache) Set(_ context.Context, categories []trivia.Category) error {
	c.categories = categories
	c.sets++
	return nil
}

type countingCategoryStore struct {
	inner *memory.CategoryStore
	calls int
}

func (s *countingCategoryStore) ListAll(ctx context.Context) ([]trivia.Category, error) {
	s.calls++
	return s.inner.ListAll(ctx)
}

func newTestService(categories trivia.CategoryStore, questions trivia.QuestionStore, cache trivia.CategoryCache) *trivia.Service {
	selector := trivia.NewSelector(rand.NewSource(1))
	return trivia.NewService(categories, questions, cache, selector, trivia.ServiceOptions{PageSize: 10}, zerolog.Nop())
}

func seedQuestions(t *testing.T, store *memory.QuestionStore, inputs ...trivia.QuestionInput) []trivia.Question {
	t.Helper()
	out := make([]trivia.Question, 0, len(inputs))
	for _, in := range inputs {
		q, err := store.Insert(context.Background(), in)
		require.NoError(t, err)
		out = append(out, q)
	}
	return out
}

func TestListCategoriesEmptyStoreIsNotFound(t *testing.T) {
	svc := newTestService(memory.NewCategoryStore(), memory.NewQuestionStore(), nil)

	_, err := svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestListCategoriesReturnsSeededData(t *testing.T) {
	categories := memory.NewCategoryStore()
	categories.Seed("Science", "Art", "Geography")
	svc := newTestService(categories, memory.NewQuestionStore(), nil)

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Science", got[0].Type)
	assert.Equal(t, 1, got[0].ID)
}

func TestListCategoriesReadsThroughCache(t *testing.T) {
	store := &countingCategoryStore{inner: memory.NewCategoryStore()}
	store.inner.Seed("Math")
	cache := &memoryCategoryCache{}
	svc := newTestService(store, memory.NewQuestionStore(), cache)

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	_, err = svc.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls, "second read should come from the cache")
	assert.Equal(t, 1, cache.sets)
}

func TestListQuestionsPaginates(t *testing.T) {
	categories := memory.NewCategoryStore()
	categories.Seed("Science")
	questions := memory.NewQuestionStore()
	for i := 0; i < 12; i++ {
		seedQuestions(t, questions, trivia.QuestionInput{Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	svc := newTestService(categories, questions, nil)

	page1, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page1.Questions, 10)
	assert.Equal(t, 12, page1.TotalQuestions)
	assert.Equal(t, map[int]string{1: "Science"}, page1.Categories)
	assert.Nil(t, page1.CurrentCategory)

	page2, err := svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page2.Questions, 2)
	assert.Equal(t, 12, page2.TotalQuestions)

	_, err = svc.ListQuestions(context.Background(), 3)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestListQuestionsEmptyStoreIsNotFound(t *testing.T) {
	svc := newTestService(memory.NewCategoryStore(), memory.NewQuestionStore(), nil)

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestAddQuestionValidatesBeforeInsert(t *testing.T) {
	questions := memory.NewQuestionStore()
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	cases := map[string]trivia.QuestionInput{
		"missing question":   {Answer: "a", Category: 1, Difficulty: 1},
		"missing answer":     {Question: "q", Category: 1, Difficulty: 1},
		"missing category":   {Question: "q", Answer: "a", Difficulty: 1},
		"missing difficulty": {Question: "q", Answer: "a", Category: 1},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddQuestion(context.Background(), input)
			assert.ErrorIs(t, err, trivia.ErrValidation)
			assert.Equal(t, 0, questions.Len(), "no row may be inserted on validation failure")
		})
	}
}

func TestAddQuestionAssignsID(t *testing.T) {
	questions := memory.NewQuestionStore()
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	q, err := svc.AddQuestion(context.Background(), trivia.QuestionInput{
		Question: "What is four by four?", Answer: "Sixteen", Category: 1, Difficulty: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, 1, questions.Len())
}

func TestDeleteQuestion(t *testing.T) {
	categories := memory.NewCategoryStore()
	categories.Seed("Math")
	questions := memory.NewQuestionStore()
	seeded := seedQuestions(t, questions,
		trivia.QuestionInput{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q2", Answer: "a2", Category: 1, Difficulty: 1},
	)
	svc := newTestService(categories, questions, nil)

	assert.ErrorIs(t, svc.DeleteQuestion(context.Background(), 999), trivia.ErrNotFound)
	assert.Equal(t, 2, questions.Len())

	require.NoError(t, svc.DeleteQuestion(context.Background(), seeded[0].ID))
	page, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalQuestions)
	for _, q := range page.Questions {
		assert.NotEqual(t, seeded[0].ID, q.ID)
	}
}

func TestSearchQuestionsIsCaseInsensitive(t *testing.T) {
	questions := memory.NewQuestionStore()
	seedQuestions(t, questions,
		trivia.QuestionInput{Question: "What is four by four?", Answer: "Sixteen", Category: 1, Difficulty: 2},
		trivia.QuestionInput{Question: "Capital of France?", Answer: "Paris", Category: 2, Difficulty: 1},
	)
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	upper, err := svc.SearchQuestions(context.Background(), "FOUR", 1)
	require.NoError(t, err)
	lower, err := svc.SearchQuestions(context.Background(), "four", 1)
	require.NoError(t, err)

	assert.Equal(t, upper.Questions, lower.Questions)
	assert.Equal(t, 1, upper.TotalQuestions)
}

func TestSearchQuestionsEmptyTermMatchesEverything(t *testing.T) {
	questions := memory.NewQuestionStore()
	seedQuestions(t, questions,
		trivia.QuestionInput{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q2", Answer: "a2", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q3", Answer: "a3", Category: 1, Difficulty: 1},
	)
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	result, err := svc.SearchQuestions(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Len(t, result.Questions, 3)
}

func TestSearchQuestionsNoMatchIsNotFound(t *testing.T) {
	questions := memory.NewQuestionStore()
	seedQuestions(t, questions, trivia.QuestionInput{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1})
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	_, err := svc.SearchQuestions(context.Background(), "fred", 1)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestListByCategory(t *testing.T) {
	questions := memory.NewQuestionStore()
	seedQuestions(t, questions,
		trivia.QuestionInput{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q2", Answer: "a2", Category: 2, Difficulty: 1},
	)
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	result, err := svc.ListByCategory(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalQuestions)
	require.NotNil(t, result.CurrentCategory)
	assert.Equal(t, 1, *result.CurrentCategory)

	// An unknown category and an empty one are indistinguishable by design.
	_, err = svc.ListByCategory(context.Background(), 99, 1)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestDrawQuizQuestionNeverRepeats(t *testing.T) {
	questions := memory.NewQuestionStore()
	seeded := seedQuestions(t, questions,
		trivia.QuestionInput{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q2", Answer: "a2", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q3", Answer: "a3", Category: 2, Difficulty: 1},
		trivia.QuestionInput{Question: "q4", Answer: "a4", Category: 2, Difficulty: 1},
		trivia.QuestionInput{Question: "q5", Answer: "a5", Category: 1, Difficulty: 1},
	)
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	var previous []int
	for range seeded {
		q, err := svc.DrawQuizQuestion(context.Background(), previous, 0)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.NotContains(t, previous, q.ID)
		previous = append(previous, q.ID)
	}

	q, err := svc.DrawQuizQuestion(context.Background(), previous, 0)
	require.NoError(t, err)
	assert.Nil(t, q, "exhausted draw must return a nil question, not an error")
}

func TestDrawQuizQuestionHonorsCategoryScope(t *testing.T) {
	questions := memory.NewQuestionStore()
	seedQuestions(t, questions,
		trivia.QuestionInput{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1},
		trivia.QuestionInput{Question: "q2", Answer: "a2", Category: 2, Difficulty: 1},
		trivia.QuestionInput{Question: "q3", Answer: "a3", Category: 2, Difficulty: 1},
	)
	svc := newTestService(memory.NewCategoryStore(), questions, nil)

	var previous []int
	for i := 0; i < 2; i++ {
		q, err := svc.DrawQuizQuestion(context.Background(), previous, 2)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 2, q.Category)
		previous = append(previous, q.ID)
	}

	q, err := svc.DrawQuizQuestion(context.Background(), previous, 2)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestDrawQuizQuestionEmptyStoreIsExhausted(t *testing.T) {
	svc := newTestService(memory.NewCategoryStore(), memory.NewQuestionStore(), nil)

	q, err := svc.DrawQuizQuestion(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Nil(t, q)
}

type failingQuestionStore struct {
	memory.QuestionStore
}

func (s *failingQuestionStore) ListAll(context.Context) ([]trivia.Question, error) {
	return nil, errors.New("connection refused")
}

func TestListQuestionsStoreFailurePropagates(t *testing.T) {
	svc := newTestService(memory.NewCategoryStore(), &failingQuestionStore{}, nil)

	_, err := svc.ListQuestions(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, trivia.ErrNotFound)
	assert.NotErrorIs(t, err, trivia.ErrValidation)
}
