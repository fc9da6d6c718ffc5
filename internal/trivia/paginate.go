package trivia

// Paginate returns the window of items for a 1-based page number. Windows
// outside the data produce an empty result, never an error. Pages below 1
// are clamped to 1.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
