package page

import (
	"bytes"
	"html/template"
)

// Page is one statically rendered entry point. Name matches the entry
// point whose bundle the document loads.
type Page struct {
	Name  string
	Route string
	Title string
	body  *template.Template
}

const landingBody = `<div class="container">
  <h1>Welcome</h1>
  <p>This is the public landing page. Sign in to continue to the protected area.</p>
  <a href="/protected">Go to the protected area</a>
</div>
{{template "footer" .}}`

const protectedBody = `<div class="container">
  <h1>Protected Area</h1>
  <p>Welcome to the protected area. You must be logged in to see this.</p>
  <a href="/api/logoutcas">Logout</a>
</div>
{{template "footer" .}}`

var (
	Landing   = newPage("landing", "/", "Home", landingBody)
	Protected = newPage("protected", "/protected", "Protected Area", protectedBody)
)

func newPage(name, route, title, body string) Page {
	tmpl := template.Must(footer.Clone())
	tmpl = template.Must(tmpl.New(name).Parse(body))

	return Page{
		Name:  name,
		Route: route,
		Title: title,
		body:  tmpl,
	}
}

func All() []Page {
	return []Page{Landing, Protected}
}

// Body renders the page's fixed markup. The templates take no input, so
// execution into a buffer cannot fail once they have parsed.
func (p Page) Body() template.HTML {
	var buf bytes.Buffer
	if err := p.body.ExecuteTemplate(&buf, p.Name, nil); err != nil {
		panic("page " + p.Name + ": " + err.Error())
	}
	return template.HTML(buf.String())
}
