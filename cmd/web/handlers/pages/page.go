package pages

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/rasterkernels/cmd/web/handlers/common"
	"thirdcoast.systems/rasterkernels/pkg/catalog"
)

var pageTmpl = template.Must(template.New("catalog").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Convolution kernel presets</title>
</head>
<body>
<main>
{{.}}
</main>
</body>
</html>
`))

// HandlePage renders the preset catalogue as an HTML page.
func HandlePage() echo.HandlerFunc {
	return func(c echo.Context) error {
		var b strings.Builder
		if err := pageTmpl.Execute(&b, catalog.HTML()); err != nil {
			slog.Error("failed to render catalogue page", "error", err)
			return common.ErrInternal("failed to render catalogue page")
		}
		return c.HTML(http.StatusOK, b.String())
	}
}

// HandleMarkdown serves the catalogue source.
func HandleMarkdown() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(catalog.Markdown()))
	}
}
