// Package views renders the setup wizard and the dashboard as HTML.
// Templates are embedded at build time and parsed once by LoadTemplates.
package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var viewsFS embed.FS

var pageTmpl *template.Template

// loadTemplatesFromFS loads page templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	pageTmpl = tmpl
	return nil
}

// LoadTemplates loads the embedded templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

var funcs = template.FuncMap{
	"icon": iconGlyph,
}

// iconGlyph maps an icon name to the glyph drawn for it.
func iconGlyph(name string) string {
	switch name {
	case "map-pin":
		return "📍"
	case "building":
		return "🏢"
	case "home":
		return "🏠"
	case "sun":
		return "☀️"
	case "cloud-rain":
		return "🌧️"
	case "settings":
		return "⚙️"
	case "chart":
		return "📊"
	default:
		return ""
	}
}

// RenderSetup writes the setup page.
func RenderSetup(w io.Writer, data *SetupPage) error {
	if pageTmpl == nil {
		return errors.New("setup template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "setup.html", data)
}

// RenderDashboard writes the dashboard page.
func RenderDashboard(w io.Writer, data *DashboardPage) error {
	if pageTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "dashboard.html", data)
}
