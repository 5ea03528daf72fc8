// Package web embeds the HTML pages and static assets served to browsers.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Pages.Render.
const (
	IndexPage       = "index"
	SuggestionsPage = "suggestions"
)

var pageTitles = map[string]string{
	IndexPage:       "Itinerary Builder",
	SuggestionsPage: "Suggested Trips",
}

// Pages holds one parsed template set per page.
type Pages struct {
	templates map[string]*template.Template
}

type pageData struct {
	Title  string
	Active string
}

// LoadPages parses the embedded page templates.
func LoadPages() (*Pages, error) {
	p := &Pages{templates: make(map[string]*template.Template, len(pageTitles))}
	for name := range pageTitles {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		p.templates[name] = tmpl
	}
	return p, nil
}

// Render writes the named page to w.
func (p *Pages) Render(w http.ResponseWriter, name string) error {
	tmpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, name+".html", pageData{
		Title:  pageTitles[name],
		Active: name,
	})
}

// StaticHandler serves the embedded assets. Mount it with the /static/ prefix stripped.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
