package lists

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

func newSession(names ...string) *models.Session {
	s := &models.Session{ID: "test", Lists: []models.List{}}
	for _, n := range names {
		s.Lists = append(s.Lists, models.List{Name: n, Todos: []models.Todo{}})
	}
	return s
}

func TestValidateListName(t *testing.T) {
	existing := []models.List{{Name: "Work"}, {Name: "Home"}}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "Groceries"},
		{name: "exact duplicate", input: "Work", wantErr: ErrDuplicateName},
		{name: "case differs", input: "work"},
		{name: "empty", input: "", wantErr: ErrInvalidLength},
		{name: "only whitespace", input: "   \t", wantErr: ErrInvalidLength},
		{name: "exactly 100", input: strings.Repeat("a", 100)},
		{name: "101", input: strings.Repeat("a", 101), wantErr: ErrInvalidLength},
		{name: "multibyte counted by rune", input: strings.Repeat("é", 100)},
		{name: "NUL padding only", input: "\x00 \x00", wantErr: ErrInvalidLength},
		{name: "no-break space is a character", input: "\u00a0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListName(existing, tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateListNameUniquenessFirst(t *testing.T) {
	long := strings.Repeat("x", 150)
	err := ValidateListName([]models.List{{Name: long}}, long)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, "List name must be unique.", verr.Message)
}

func TestValidateTodoName(t *testing.T) {
	assert.NoError(t, ValidateTodoName("Milk"))
	assert.ErrorIs(t, ValidateTodoName(" "), ErrInvalidLength)
	assert.ErrorIs(t, ValidateTodoName(strings.Repeat("m", 101)), ErrInvalidLength)
	assert.EqualError(t, ValidateTodoName(""), "Todo name must be between 1 and 100 characters.")
}

func TestCreateList(t *testing.T) {
	t.Run("trims and appends", func(t *testing.T) {
		s := newSession()
		idx, err := CreateList(s, "  Groceries  ")
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
		require.Len(t, s.Lists, 1)
		assert.Equal(t, "Groceries", s.Lists[0].Name)
		assert.NotNil(t, s.Lists[0].Todos)
		assert.Empty(t, s.Lists[0].Todos)
	})

	t.Run("keeps unicode spaces", func(t *testing.T) {
		s := newSession()
		_, err := CreateList(s, "\u00a0Work\u00a0\n")
		require.NoError(t, err)
		assert.Equal(t, "\u00a0Work\u00a0", s.Lists[0].Name)

		_, err = CreateList(s, "Work")
		assert.NoError(t, err, "no-break spaces make the names distinct")
	})

	t.Run("duplicate after trim is rejected", func(t *testing.T) {
		s := newSession("Work")
		_, err := CreateList(s, "Work ")
		assert.ErrorIs(t, err, ErrDuplicateName)
		assert.Len(t, s.Lists, 1)
	})

	t.Run("create Work twice", func(t *testing.T) {
		s := newSession()
		_, err := CreateList(s, "Work")
		require.NoError(t, err)
		_, err = CreateList(s, "Work")
		assert.ErrorIs(t, err, ErrDuplicateName)

		count := 0
		for _, l := range s.Lists {
			if l.Name == "Work" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestRenameList(t *testing.T) {
	s := newSession("Work", "Home")

	assert.NoError(t, RenameList(s, 0, "Work"), "renaming to its own name is allowed")
	assert.ErrorIs(t, RenameList(s, 0, "Home"), ErrDuplicateName)
	assert.ErrorIs(t, RenameList(s, 1, ""), ErrInvalidLength)
	assert.ErrorIs(t, RenameList(s, 5, "Other"), ErrIndexOutOfRange)

	require.NoError(t, RenameList(s, 1, " House "))
	assert.Equal(t, "House", s.Lists[1].Name)
	assert.Equal(t, "Work", s.Lists[0].Name)
}

func TestDeleteListShiftsIndices(t *testing.T) {
	s := newSession("A", "B", "C")

	removed, err := DeleteList(s, 1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Name)
	require.Len(t, s.Lists, 2)
	assert.Equal(t, "C", s.Lists[1].Name)

	_, err = DeleteList(s, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = DeleteList(s, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTodoOperations(t *testing.T) {
	s := newSession("Groceries")

	idx, err := AddTodo(s, 0, " Milk ")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = AddTodo(s, 0, "Milk")
	require.NoError(t, err, "duplicate todo names are allowed")

	_, err = AddTodo(s, 0, "")
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = AddTodo(s, 3, "Bread")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	list := s.Lists[0]
	require.Len(t, list.Todos, 2)
	assert.Equal(t, models.Todo{Name: "Milk", Completed: false}, list.Todos[0])

	require.NoError(t, SetTodoCompleted(s, 0, 1, true))
	assert.True(t, s.Lists[0].Todos[1].Completed)
	require.NoError(t, SetTodoCompleted(s, 0, 1, false))
	assert.False(t, s.Lists[0].Todos[1].Completed)
	assert.ErrorIs(t, SetTodoCompleted(s, 0, 2, true), ErrIndexOutOfRange)

	removed, err := DeleteTodo(s, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Milk", removed.Name)
	assert.Len(t, s.Lists[0].Todos, 1)
	_, err = DeleteTodo(s, 0, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCompleteAll(t *testing.T) {
	s := newSession("Chores")
	for _, n := range []string{"Dishes", "Laundry", "Vacuum"} {
		_, err := AddTodo(s, 0, n)
		require.NoError(t, err)
	}
	require.NoError(t, SetTodoCompleted(s, 0, 1, true))

	require.NoError(t, CompleteAll(s, 0))
	assert.Equal(t, 0, s.Lists[0].TodosRemainingCount())
	assert.True(t, s.Lists[0].IsComplete())

	assert.ErrorIs(t, CompleteAll(s, 1), ErrIndexOutOfRange)
}

func TestGroceriesScenario(t *testing.T) {
	s := newSession()
	li, err := CreateList(s, "Groceries")
	require.NoError(t, err)
	ti, err := AddTodo(s, li, "Milk")
	require.NoError(t, err)

	list := s.Lists[li]
	assert.Equal(t, 1, list.TodosCount())
	assert.Equal(t, 1, list.TodosRemainingCount())
	assert.Equal(t, "1 / 1", list.CompletionRatio())
	assert.False(t, list.IsComplete())

	require.NoError(t, SetTodoCompleted(s, li, ti, true))
	list = s.Lists[li]
	assert.Equal(t, "0 / 1", list.CompletionRatio())
	assert.True(t, list.IsComplete())
}

func TestSortListsForDisplay(t *testing.T) {
	a := models.List{Name: "A", Todos: []models.Todo{{Name: "x"}}}
	b := models.List{Name: "B", Todos: []models.Todo{{Name: "y", Completed: true}}}
	c := models.List{Name: "C"}

	got := SortListsForDisplay([]models.List{a, b, c})
	require.Len(t, got, 3)

	var names []string
	var indices []int
	for _, il := range got {
		names = append(names, il.Item.Name)
		indices = append(indices, il.Index)
	}
	assert.Equal(t, []string{"A", "C", "B"}, names)
	assert.Equal(t, []int{0, 2, 1}, indices)

	assert.Empty(t, SortListsForDisplay(nil))
}

func TestSortTodosForDisplay(t *testing.T) {
	todos := []models.Todo{
		{Name: "done1", Completed: true},
		{Name: "open1"},
		{Name: "done2", Completed: true},
		{Name: "open2"},
	}
	got := SortTodosForDisplay(todos)

	var indices []int
	for _, it := range got {
		indices = append(indices, it.Index)
	}
	assert.Equal(t, []int{1, 3, 0, 2}, indices)
}
