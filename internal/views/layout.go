// Package views renders the HTML pages as templ components backed by
// html/template.
package views

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

var pages = template.Must(template.New("views").Parse(layoutHTML + listsHTML))

// page exposes the named template as a component.
func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

type layoutData struct {
	Title string
	Flash *models.Flash
	Body  template.HTML
}

// Layout wraps body in the page chrome and shows flash, if set, above it.
func Layout(title string, flash *models.Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if body != nil {
			if err := body.Render(ctx, &buf); err != nil {
				return err
			}
		}
		if flash != nil && !flash.Kind.IsValid() {
			flash = nil
		}
		return pages.ExecuteTemplate(w, "layout", layoutData{
			Title: title,
			Flash: flash,
			// body is one of this package's templates, already escaped.
			Body: template.HTML(buf.String()),
		})
	})
}

// NotFound is the body shown for a missing list or todo.
func NotFound(message string) templ.Component {
	return page("not_found", message)
}

const layoutHTML = `
{{define "layout" -}}
<!doctype html>
<html lang="en">
<head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>{{.Title}}</title><style>` + pageCSS + `</style></head>
<body><header><h1><a href="/lists">Todo Tracker</a></h1></header><main>
{{- with .Flash}}<div class="flash {{.Kind}}"><p>{{.Message}}</p></div>{{end -}}
{{.Body}}</main></body>
</html>
{{end}}

{{define "not_found" -}}
<section class="not-found"><h2>Not found</h2><p>{{.}}</p><p><a href="/lists">Back to all lists</a></p></section>
{{- end}}
`

const pageCSS = `
body{font-family:system-ui,sans-serif;max-width:48rem;margin:0 auto;padding:1rem;color:#222}
header h1 a{color:inherit;text-decoration:none}
.flash{padding:.5rem 1rem;border-radius:4px;margin-bottom:1rem}
.flash.success{background:#e3f6e8;color:#1d6b33}
.flash.error{background:#fbe4e4;color:#8a1f1f}
ul.lists,ul.todos{list-style:none;padding:0}
ul.lists li,ul.todos li{display:flex;gap:.5rem;align-items:center;padding:.4rem 0;border-bottom:1px solid #eee}
li.complete .name{text-decoration:line-through;color:#888}
.ratio{margin-left:auto;color:#666}
form.inline{display:inline}
.actions{display:flex;gap:.5rem;margin:1rem 0}
`
