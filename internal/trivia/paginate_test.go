package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindows(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	assert.Len(t, Paginate(items, 1, 10), 10)
	assert.Len(t, Paginate(items, 2, 10), 10)
	assert.Len(t, Paginate(items, 3, 10), 5)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, Paginate(items, 3, 10))
}

func TestPaginatePartitionReconstructsInput(t *testing.T) {
	items := make([]string, 37)
	for i := range items {
		items[i] = string(rune('a' + i%26))
	}

	var rebuilt []string
	for page := 1; ; page++ {
		window := Paginate(items, page, 10)
		if len(window) == 0 {
			break
		}
		assert.LessOrEqual(t, len(window), 10)
		rebuilt = append(rebuilt, window...)
	}
	assert.Equal(t, items, rebuilt)
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Empty(t, Paginate(items, 2, 10))
	assert.Empty(t, Paginate(items, 100, 10))
	assert.Empty(t, Paginate([]int{}, 1, 10))
}

func TestPaginateClampsNonPositivePages(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	first := Paginate(items, 1, 2)
	assert.Equal(t, first, Paginate(items, 0, 2))
	assert.Equal(t, first, Paginate(items, -3, 2))
}

func TestPaginateShortInput(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, items, Paginate(items, 1, 10))
}
