package models

import "fmt"

// Todo is a single named item inside a List.
type Todo struct {
	Name      string `json:"name" yaml:"name"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// List is a named, ordered collection of todos. Lists and todos are
// addressed by position only, so removing one shifts every later index.
type List struct {
	Name  string `json:"name" yaml:"name"`
	Todos []Todo `json:"todos" yaml:"todos"`
}

// TodosCount returns the number of todos in the list.
func (l List) TodosCount() int {
	return len(l.Todos)
}

// TodosRemainingCount returns the number of todos not yet completed.
func (l List) TodosRemainingCount() int {
	n := 0
	for _, t := range l.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// IsComplete reports whether the list has at least one todo and none remaining.
func (l List) IsComplete() bool {
	return l.TodosCount() > 0 && l.TodosRemainingCount() == 0
}

// CompletionRatio renders "<remaining> / <total>".
func (l List) CompletionRatio() string {
	return fmt.Sprintf("%d / %d", l.TodosRemainingCount(), l.TodosCount())
}
