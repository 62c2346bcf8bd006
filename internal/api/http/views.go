package http

import (
	"embed"
	"fmt"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// layoutView wraps every rendered page.
const layoutView = "layout"

func newViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("money", money)
	return engine
}

// money formats an amount with two decimals. Missing amounts render empty.
func money(v any) string {
	switch amount := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", amount)
	case *float64:
		if amount == nil {
			return ""
		}
		return fmt.Sprintf("%.2f", *amount)
	default:
		return ""
	}
}
