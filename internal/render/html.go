package render

import (
	"html/template"
	"strings"
)

var popupTmpl = template.Must(template.New("popup").Parse(
	`<h3>{{.Title}}</h3>{{if .Hours}}<p>{{.Hours}}</p>{{end}}{{if .Description}}<p>{{.Description}}</p>{{end}}`,
))

var elementTmpl = template.Must(template.New("marker").Parse(
	`<div class="marker {{.Class}}"{{if .BorderColor}} style="border-color: {{.BorderColor}}"{{end}}>` +
		`{{range $r, $row := .Grid}}<div class="grid-row">` +
		`{{range $row}}<div class="grid-cell"{{if .Color}} style="background-color: {{.Color}}"{{end}} title="{{.Tooltip}}">` +
		`{{if .Icon}}<img src="{{.Icon}}" alt="">{{end}}</div>{{end}}` +
		`</div>{{end}}</div>`,
))

func popupHTML(title, hours, description string) string {
	var b strings.Builder
	data := struct{ Title, Hours, Description string }{title, hours, description}
	// Execution can only fail on writer errors; strings.Builder never returns one.
	_ = popupTmpl.Execute(&b, data)
	return b.String()
}

// elementHTML renders the marker's DOM node: a bordered container holding the info grid.
func elementHTML(m Marker) string {
	var b strings.Builder
	_ = elementTmpl.Execute(&b, m)
	return b.String()
}
