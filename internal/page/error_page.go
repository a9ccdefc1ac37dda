package page

import (
	"html/template"
	"io"
)

type errorData struct {
	Page       string
	Message    string
	RequestID  string
	Dev        bool
	ReloadPath string
}

// errorTemplate shows build output in dev and stays silent in production.
// The dev variant keeps listening for reloads so a fixed build replaces it.
var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>{{if .Dev}}Build error{{else}}Something went wrong{{end}}</title>
<style>
body { font-family: ui-sans-serif, system-ui, sans-serif; margin: 0; background: #181818; color: #eee; }
main { max-width: 960px; margin: 48px auto; padding: 0 24px; }
h1 { color: #ff5f56; font-size: 20px; }
pre { background: #242424; border-left: 3px solid #ff5f56; padding: 16px; overflow-x: auto; white-space: pre-wrap; }
small { color: #888; }
</style>
</head>
<body>
<main>
{{- if .Dev}}
<h1>Failed to build page "{{.Page}}"</h1>
<pre>{{.Message}}</pre>
<p><small>Save a source file to rebuild. This page reloads when the build succeeds.</small></p>
{{- else}}
<h1>Something went wrong</h1>
<p>The page could not be served.</p>
{{- end}}
{{- if .RequestID}}
<p><small>Request {{.RequestID}}</small></p>
{{- end}}
</main>
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

func renderError(w io.Writer, data errorData) error {
	return errorTemplate.Execute(w, data)
}
