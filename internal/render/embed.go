package render

import _ "embed"

//go:embed templates/page.html
var pageTemplate string
