package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/iammorganparry/clive/apps/todo/internal/lists"
	"github.com/iammorganparry/clive/apps/todo/internal/models"
	"github.com/iammorganparry/clive/apps/todo/internal/views"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// render writes a full HTML page.
func render(w http.ResponseWriter, r *http.Request, status int, title string, flash *models.Flash, body templ.Component) {
	templ.Handler(views.Layout(title, flash, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

func renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	render(w, r, http.StatusNotFound, "Not found", nil, views.NotFound(message))
}

// renderInvalid re-shows a form with the validation message. The original
// input stays in the form so the user can correct it.
func renderInvalid(w http.ResponseWriter, r *http.Request, title string, err error, body templ.Component) {
	render(w, r, http.StatusOK, title, &models.Flash{Kind: models.FlashError, Message: err.Error()}, body)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// urlIndex parses a positional index from the route. A non-numeric value is
// reported as out of range so it is handled like a stale link.
func urlIndex(r *http.Request, param string) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		return -1, lists.ErrIndexOutOfRange
	}
	return i, nil
}

func isValidation(err error) bool {
	var verr *lists.ValidationError
	return errors.As(err, &verr)
}
