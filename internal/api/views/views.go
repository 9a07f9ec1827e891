// Package views renders the server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/finance"
	"github.com/baharkarakas/mindbank/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageDashboard = "dashboard"
	PageConfig    = "config"
)

type DashboardPage struct {
	Dashboard models.Dashboard
	Month     finance.MonthProgress
	// FirstTime is set until a salary or any asset has been entered.
	FirstTime bool
}

type ConfigPage struct {
	Config models.UserConfig
	Assets models.AssetRecord
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"eur": finance.FormatEUR,
		"usd": func(d decimal.Decimal) string { return finance.Format(d, "USD") },
		"num": func(d decimal.Decimal) string { return finance.Cents(d).StringFixed(2) },
		"pct": func(d decimal.Decimal) string { return d.Round(1).String() },
		"rate": func(d decimal.Decimal) string {
			return d.Round(4).StringFixed(4)
		},
	}
	tmpl, err := template.New("mindbank").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named page into w. Output is buffered so a template
// failure never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
