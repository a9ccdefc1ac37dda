package page

import (
	"html/template"
	"io"

	"github.com/3-lines-studio/gjallar/internal/core"
)

type DocumentOptions struct {
	Dev        bool
	ReloadPath string
}

type documentData struct {
	Title      string
	Body       template.HTML
	Script     string
	CSS        []string
	Dev        bool
	ReloadPath string
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>{{.Title}}</title>
{{- range .CSS}}
<link rel="stylesheet" href="{{.}}" />
{{- end}}
</head>
<body>
<div id="app">
{{.Body}}
</div>
{{- if .Script}}
<script type="module" src="{{.Script}}"></script>
{{- end}}
{{- if .Dev}}
<script>
(function () {
  var es = new EventSource("{{.ReloadPath}}");
  es.addEventListener("reload", function () { window.location.reload(); });
})();
</script>
{{- end}}
</body>
</html>
`))

// RenderDocument writes the full HTML document for p.
func RenderDocument(w io.Writer, p Page, assets core.PageAssets, opts DocumentOptions) error {
	return documentTemplate.Execute(w, documentData{
		Title:      p.Title,
		Body:       p.Body(),
		Script:     assets.Script,
		CSS:        assets.CSS,
		Dev:        opts.Dev,
		ReloadPath: opts.ReloadPath,
	})
}
