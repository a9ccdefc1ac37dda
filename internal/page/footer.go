package page

import "html/template"

// footer is cloned into every page body so each document carries it once.
var footer = template.Must(template.New("footer-root").Parse(`{{define "footer"}}<footer class="site-footer">
  <p><a href="/">Home</a> &middot; <a href="/protected">Protected Area</a></p>
</footer>{{end}}`))
