package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/iammorganparry/clive/apps/todo/internal/lists"
	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

type listRow struct {
	Path     string
	Name     string
	Ratio    string
	Complete bool
}

type listView struct {
	Path     string
	Name     string
	Complete bool
	Todos    []todoRow
	Input    string
}

type todoRow struct {
	Path      string
	Name      string
	Completed bool
	// Toggle is the completed value the toggle form submits.
	Toggle    bool
}

// ListsPage renders every list in display order. Links carry the original
// index of each list.
func ListsPage(sorted []lists.Indexed[models.List]) templ.Component {
	rows := make([]listRow, 0, len(sorted))
	for _, il := range sorted {
		rows = append(rows, listRow{
			Path:     listPath(il.Index),
			Name:     il.Item.Name,
			Ratio:    il.Item.CompletionRatio(),
			Complete: il.Item.IsComplete(),
		})
	}
	return page("lists", rows)
}

// NewListPage renders the creation form with name pre-filled.
func NewListPage(name string) templ.Component {
	return page("new_list", name)
}

// EditListPage renders the rename form for the list at index.
func EditListPage(index int, list models.List, name string) templ.Component {
	return page("edit_list", listView{
		Path:  listPath(index),
		Name:  list.Name,
		Input: name,
	})
}

// ListPage renders one list with its todos, incomplete first, and the
// add-todo form pre-filled with todoName.
func ListPage(index int, list models.List, todoName string) templ.Component {
	v := listView{
		Path:     listPath(index),
		Name:     list.Name,
		Complete: list.IsComplete(),
		Input:    todoName,
	}
	for _, it := range lists.SortTodosForDisplay(list.Todos) {
		v.Todos = append(v.Todos, todoRow{
			Path:      v.Path + "/todos/" + strconv.Itoa(it.Index),
			Name:      it.Item.Name,
			Completed: it.Item.Completed,
			Toggle:    !it.Item.Completed,
		})
	}
	return page("list", v)
}

func listPath(index int) string {
	return "/lists/" + strconv.Itoa(index)
}

const listsHTML = `
{{define "lists" -}}
<section class="lists"><h2>Your lists</h2>
{{- if .}}<ul class="lists">
{{- range .}}<li{{if .Complete}} class="complete"{{end}}><a class="name" href="{{.Path}}">{{.Name}}</a><span class="ratio">{{.Ratio}}</span></li>{{end -}}
</ul>
{{- else}}<p class="empty">You have no lists yet.</p>{{end -}}
<div class="actions"><a href="/lists/new">New list</a><a href="/lists/export">Export as YAML</a></div></section>
{{- end}}

{{define "new_list" -}}
<section><h2>Create a new list</h2><form action="/lists" method="post">
<label for="list_name">Enter the name for your new list:</label>
<input id="list_name" name="list_name" placeholder="List name" type="text" value="{{.}}"/>
<button type="submit">Save</button><a href="/lists">Cancel</a></form></section>
{{- end}}

{{define "edit_list" -}}
<section><h2>Editing '{{.Name}}'</h2><form action="{{.Path}}" method="post">
<label for="list_name">Enter the new name for the list:</label>
<input id="list_name" name="list_name" type="text" value="{{.Input}}"/>
<button type="submit">Save</button><a href="{{.Path}}">Cancel</a></form>
<form action="{{.Path}}/destroy" method="post"><button type="submit" class="delete">Delete list</button></form></section>
{{- end}}

{{define "list" -}}
<section class="list{{if .Complete}} complete{{end}}"><h2>{{.Name}}</h2>
<div class="actions"><a href="{{.Path}}/edit">Edit list</a><form class="inline" action="{{.Path}}/complete_all" method="post"><button type="submit">Complete all</button></form></div>
<ul class="todos">
{{- range .Todos}}
<li{{if .Completed}} class="complete"{{end}}><form class="inline" action="{{.Path}}" method="post"><input type="hidden" name="completed" value="{{.Toggle}}"/><button type="submit">{{if .Completed}}Undo{{else}}Done{{end}}</button></form><span class="name">{{.Name}}</span><form class="inline" action="{{.Path}}/destroy" method="post"><button type="submit" class="delete">Delete</button></form></li>
{{- end}}
</ul>
<form action="{{.Path}}/todos" method="post"><label for="todo">Enter a new todo item:</label>
<input id="todo" name="todo" placeholder="Something to do" type="text" value="{{.Input}}"/>
<button type="submit">Add</button></form></section>
{{- end}}
`
