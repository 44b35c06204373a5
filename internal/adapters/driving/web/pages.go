package web

import (
	"html/template"
	"net/http"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/logger"
)

var multipleMatchesPage = template.Must(template.New("multiple").Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Multiple matches found</title></head>
<body>
<div class="multiple-matches">
  <h1>Multiple matches found</h1>
  <p>Multiple items match your search. Please select one:</p>
  <div class="matches-list">
  {{- range .Matches}}
    <div class="match-item">
      <a href="{{siteURL .URL}}">
        <h3>{{.Title}}</h3>
        <p>Type: {{.Type}}</p>
        <p>ID: {{.ID}}</p>
      </a>
    </div>
  {{- end}}
  </div>
</div>
</body>
</html>
`))

var noMatchesPage = template.Must(template.New("none").Funcs(pageFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>No matches found</title></head>
<body>
<div class="no-matches">
  <h1>No matches found</h1>
  <p>No plants or environments found matching "<strong>{{.Query}}</strong>".</p>
  <p><a href="/index.html">Return to dashboard</a></p>
</div>
</body>
</html>
`))

var pageFuncs = template.FuncMap{"siteURL": siteURL}

func renderPage(w http.ResponseWriter, status int, page *template.Template, res domain.Resolution) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Execute(w, res); err != nil {
		logger.Warn("render %s page: %v", page.Name(), err)
	}
}
