package models

import "testing"

func TestListIsComplete(t *testing.T) {
	tests := []struct {
		name  string
		todos []Todo
		want  bool
	}{
		{name: "empty", todos: nil, want: false},
		{name: "single completed", todos: []Todo{{Completed: true}}, want: true},
		{name: "mixed", todos: []Todo{{Completed: true}, {Completed: false}}, want: false},
		{name: "single open", todos: []Todo{{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := List{Name: "l", Todos: tt.todos}
			if got := l.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListCounts(t *testing.T) {
	l := List{Todos: []Todo{{Name: "a"}, {Name: "b", Completed: true}, {Name: "c"}}}
	if l.TodosCount() != 3 {
		t.Errorf("expected 3 todos, got %d", l.TodosCount())
	}
	if l.TodosRemainingCount() != 2 {
		t.Errorf("expected 2 remaining, got %d", l.TodosRemainingCount())
	}
	if got := l.CompletionRatio(); got != "2 / 3" {
		t.Errorf("expected ratio '2 / 3', got %q", got)
	}
}

func TestSessionFlashReadOnce(t *testing.T) {
	var s Session
	if s.PopFlash() != nil {
		t.Fatal("expected no flash on a new session")
	}

	s.SetFlash(FlashError, "first")
	s.SetFlash(FlashSuccess, "The list has been created.")

	f := s.PopFlash()
	if f == nil {
		t.Fatal("expected flash, got nil")
	}
	if f.Kind != FlashSuccess || f.Message != "The list has been created." {
		t.Errorf("unexpected flash %+v", f)
	}
	if s.PopFlash() != nil {
		t.Error("flash should be cleared after the first read")
	}
	if !FlashError.IsValid() || FlashKind("info").IsValid() {
		t.Error("unexpected IsValid result")
	}
}
