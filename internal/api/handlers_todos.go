package api

import (
	"log/slog"
	"net/http"

	"github.com/iammorganparry/clive/apps/todo/internal/lists"
	"github.com/iammorganparry/clive/apps/todo/internal/models"
	"github.com/iammorganparry/clive/apps/todo/internal/sessions"
	"github.com/iammorganparry/clive/apps/todo/internal/views"
)

const msgTodoNotFound = "The specified todo was not found."

type TodoHandler struct {
	logger *slog.Logger
}

func NewTodoHandler(logger *slog.Logger) *TodoHandler {
	return &TodoHandler{logger: logger}
}

// Create handles POST /lists/{id}/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	idx, list, ok := lookupList(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())
	name := r.FormValue("todo")

	todoIdx, err := lists.AddTodo(sess, idx, name)
	if err != nil {
		renderInvalid(w, r, list.Name, err, views.ListPage(idx, *list, name))
		return
	}

	h.logger.Info("todo created", "list", idx, "todo", todoIdx, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "The todo has been created.")
	redirect(w, r, listPath(idx))
}

// Destroy handles POST /lists/{id}/todos/{todoID}/destroy
func (h *TodoHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	idx, todoIdx, ok := lookupTodo(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())

	if _, err := lists.DeleteTodo(sess, idx, todoIdx); err != nil {
		renderNotFound(w, r, msgTodoNotFound)
		return
	}

	h.logger.Info("todo deleted", "list", idx, "todo", todoIdx, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "The todo has been deleted.")
	redirect(w, r, listPath(idx))
}

// Update handles POST /lists/{id}/todos/{todoID}. Any value of the completed
// field other than "true" marks the todo incomplete.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	idx, todoIdx, ok := lookupTodo(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())
	completed := r.FormValue("completed") == "true"

	if err := lists.SetTodoCompleted(sess, idx, todoIdx, completed); err != nil {
		renderNotFound(w, r, msgTodoNotFound)
		return
	}

	h.logger.Info("todo updated", "list", idx, "todo", todoIdx, "completed", completed, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "The todo has been updated.")
	redirect(w, r, listPath(idx))
}

// CompleteAll handles POST /lists/{id}/complete_all
func (h *TodoHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	idx, _, ok := lookupList(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())

	if err := lists.CompleteAll(sess, idx); err != nil {
		renderNotFound(w, r, msgListNotFound)
		return
	}

	h.logger.Info("todos completed", "list", idx, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "All todos have been completed.")
	redirect(w, r, listPath(idx))
}

func lookupTodo(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	idx, list, ok := lookupList(w, r)
	if !ok {
		return -1, -1, false
	}
	todoIdx, err := urlIndex(r, "todoID")
	if err != nil || todoIdx < 0 || todoIdx >= list.TodosCount() {
		renderNotFound(w, r, msgTodoNotFound)
		return -1, -1, false
	}
	return idx, todoIdx, true
}
