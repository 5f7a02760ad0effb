package lists

import "github.com/iammorganparry/clive/apps/todo/internal/models"

// Indexed pairs an item with its position in the unsorted sequence. Links and
// forms must use Index, never the display position.
type Indexed[T any] struct {
	Index int
	Item  T
}

// SortListsForDisplay puts incomplete lists first and complete lists last,
// keeping the original relative order inside each group.
func SortListsForDisplay(lists []models.List) []Indexed[models.List] {
	return partition(lists, models.List.IsComplete)
}

// SortTodosForDisplay puts incomplete todos before completed ones.
func SortTodosForDisplay(todos []models.Todo) []Indexed[models.Todo] {
	return partition(todos, func(t models.Todo) bool { return t.Completed })
}

func partition[T any](items []T, last func(T) bool) []Indexed[T] {
	out := make([]Indexed[T], 0, len(items))
	var tail []Indexed[T]
	for i, item := range items {
		if last(item) {
			tail = append(tail, Indexed[T]{Index: i, Item: item})
			continue
		}
		out = append(out, Indexed[T]{Index: i, Item: item})
	}
	return append(out, tail...)
}
