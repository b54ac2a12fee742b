package view

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// Layout wraps every page.
const Layout = "layouts/main"

// NewEngine builds the fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("formatShortDate", FormatShortDate)
	return engine
}

// ListPage, FormPage and DetailPage are the bindings of the three pages.
// ErrorPage is shown when a page cannot be served.
type ListPage struct {
	Title string
	List  *NoteList
}

type FormPage struct {
	Title   string
	DraftId string
	IsNew   bool
	Form    *NoteForm
	Error   string
}

type DetailPage struct {
	Title  string
	Detail *NoteDetail
}

type ErrorPage struct {
	Title   string
	Status  int
	Message string
}
