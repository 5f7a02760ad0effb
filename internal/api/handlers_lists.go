package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iammorganparry/clive/apps/todo/internal/lists"
	"github.com/iammorganparry/clive/apps/todo/internal/models"
	"github.com/iammorganparry/clive/apps/todo/internal/sessions"
	"github.com/iammorganparry/clive/apps/todo/internal/views"
)

const msgListNotFound = "The specified list was not found."

type ListHandler struct {
	logger *slog.Logger
}

func NewListHandler(logger *slog.Logger) *ListHandler {
	return &ListHandler{logger: logger}
}

// Index handles GET /lists
func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	render(w, r, http.StatusOK, "Lists", sess.PopFlash(), views.ListsPage(lists.SortListsForDisplay(sess.Lists)))
}

// New handles GET /lists/new
func (h *ListHandler) New(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	render(w, r, http.StatusOK, "New list", sess.PopFlash(), views.NewListPage(""))
}

// Create handles POST /lists
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	name := r.FormValue("list_name")

	idx, err := lists.CreateList(sess, name)
	if err != nil {
		renderInvalid(w, r, "New list", err, views.NewListPage(name))
		return
	}

	h.logger.Info("list created", "list", idx, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "The list has been created.")
	redirect(w, r, "/lists")
}

// Show handles GET /lists/{id}
func (h *ListHandler) Show(w http.ResponseWriter, r *http.Request) {
	idx, list, ok := lookupList(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())
	render(w, r, http.StatusOK, list.Name, sess.PopFlash(), views.ListPage(idx, *list, ""))
}

// Edit handles GET /lists/{id}/edit
func (h *ListHandler) Edit(w http.ResponseWriter, r *http.Request) {
	idx, list, ok := lookupList(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())
	render(w, r, http.StatusOK, "Edit list", sess.PopFlash(), views.EditListPage(idx, *list, list.Name))
}

// Update handles POST /lists/{id}
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	idx, list, ok := lookupList(w, r)
	if !ok {
		return
	}
	sess := sessions.FromContext(r.Context())
	name := r.FormValue("list_name")

	if err := lists.RenameList(sess, idx, name); err != nil {
		if isValidation(err) {
			renderInvalid(w, r, "Edit list", err, views.EditListPage(idx, *list, name))
			return
		}
		renderNotFound(w, r, msgListNotFound)
		return
	}

	h.logger.Info("list updated", "list", idx, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "The list has been updated.")
	redirect(w, r, listPath(idx))
}

// Destroy handles POST /lists/{id}/destroy
func (h *ListHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	idx, err := urlIndex(r, "id")
	if err == nil {
		_, err = lists.DeleteList(sess, idx)
	}
	if err != nil {
		renderNotFound(w, r, msgListNotFound)
		return
	}

	h.logger.Info("list deleted", "list", idx, "session_id", sess.ID)
	sess.SetFlash(models.FlashSuccess, "The list has been deleted.")
	redirect(w, r, "/lists")
}

// Export handles GET /lists/export
func (h *ListHandler) Export(w http.ResponseWriter, r *http.Request) {
	sess := sessions.FromContext(r.Context())
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="lists.yaml"`)
	if err := lists.WriteYAML(w, sess.Lists); err != nil {
		h.logger.Error("export lists", "error", err, "session_id", sess.ID)
	}
}

// lookupList resolves the {id} route parameter against the session, rendering the
// not-found page when it does not name a list.
func lookupList(w http.ResponseWriter, r *http.Request) (int, *models.List, bool) {
	idx, err := urlIndex(r, "id")
	if err != nil {
		renderNotFound(w, r, msgListNotFound)
		return -1, nil, false
	}
	list, err := lists.Get(sessions.FromContext(r.Context()), idx)
	if err != nil {
		renderNotFound(w, r, msgListNotFound)
		return -1, nil, false
	}
	return idx, list, true
}

func listPath(idx int) string {
	return "/lists/" + strconv.Itoa(idx)
}
