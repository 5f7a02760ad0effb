// Package lists holds the to-do domain rules: name validation, list and todo
// mutations against a session, and the display ordering used by the views.
//
// Every mutation validates first and only then touches the session, so a
// rejected call leaves the state exactly as it was.
package lists

import (
	"slices"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

// Get returns a pointer to the list at index.
func Get(s *models.Session, index int) (*models.List, error) {
	if index < 0 || index >= len(s.Lists) {
		return nil, outOfRange("list", index, len(s.Lists))
	}
	return &s.Lists[index], nil
}

// CreateList appends a new empty list and returns its index.
func CreateList(s *models.Session, name string) (int, error) {
	name = trimName(name)
	if err := ValidateListName(s.Lists, name); err != nil {
		return -1, err
	}
	s.Lists = append(s.Lists, models.List{Name: name, Todos: []models.Todo{}})
	return len(s.Lists) - 1, nil
}

// RenameList replaces the name of the list at index in place.
func RenameList(s *models.Session, index int, name string) error {
	list, err := Get(s, index)
	if err != nil {
		return err
	}
	name = trimName(name)
	if err := validateListName(s.Lists, name, index); err != nil {
		return err
	}
	list.Name = name
	return nil
}

// DeleteList removes the list at index and returns it. Later lists move down
// by one.
func DeleteList(s *models.Session, index int) (models.List, error) {
	list, err := Get(s, index)
	if err != nil {
		return models.List{}, err
	}
	removed := *list
	s.Lists = slices.Delete(s.Lists, index, index+1)
	return removed, nil
}

// AddTodo appends an incomplete todo to the list and returns its index.
func AddTodo(s *models.Session, listIndex int, name string) (int, error) {
	list, err := Get(s, listIndex)
	if err != nil {
		return -1, err
	}
	name = trimName(name)
	if err := ValidateTodoName(name); err != nil {
		return -1, err
	}
	list.Todos = append(list.Todos, models.Todo{Name: name})
	return len(list.Todos) - 1, nil
}

// DeleteTodo removes the todo at todoIndex from the list.
func DeleteTodo(s *models.Session, listIndex, todoIndex int) (models.Todo, error) {
	todo, err := getTodo(s, listIndex, todoIndex)
	if err != nil {
		return models.Todo{}, err
	}
	removed := *todo
	list := &s.Lists[listIndex]
	list.Todos = slices.Delete(list.Todos, todoIndex, todoIndex+1)
	return removed, nil
}

// SetTodoCompleted sets the completed flag directly.
func SetTodoCompleted(s *models.Session, listIndex, todoIndex int, completed bool) error {
	todo, err := getTodo(s, listIndex, todoIndex)
	if err != nil {
		return err
	}
	todo.Completed = completed
	return nil
}

// CompleteAll marks every todo in the list completed.
func CompleteAll(s *models.Session, listIndex int) error {
	list, err := Get(s, listIndex)
	if err != nil {
		return err
	}
	for i := range list.Todos {
		list.Todos[i].Completed = true
	}
	return nil
}

func getTodo(s *models.Session, listIndex, todoIndex int) (*models.Todo, error) {
	list, err := Get(s, listIndex)
	if err != nil {
		return nil, err
	}
	if todoIndex < 0 || todoIndex >= len(list.Todos) {
		return nil, outOfRange("todo", todoIndex, len(list.Todos))
	}
	return &list.Todos[todoIndex], nil
}
