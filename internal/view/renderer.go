package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
)

const layoutGlob = "layouts/*.html"

// Renderer executes one page template inside the shared layout. It
// implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page under root (pages, forms, errors) together
// with the layouts. Pages are addressed by their path without the extension,
// e.g. "pages/show_venue".
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	layouts, err := template.New("").Funcs(Funcs()).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(fsys, dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			tmpl, err := layouts.Clone()
			if err != nil {
				return nil, err
			}
			if _, err := tmpl.ParseFS(fsys, file); err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.pages[strings.TrimSuffix(file, path.Ext(file))] = tmpl
		}
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	// Render into a buffer so a failing template never leaves half a page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": Datetime,
		"genres":   func() []string { return models.Genres },
		"states":   func() []string { return models.States },
		"has": func(list []string, v string) bool {
			for _, item := range list {
				if item == v {
					return true
				}
			}
			return false
		},
		"join": strings.Join,
	}
}

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// Datetime formats a show time for display. value is a time.Time or a
// string in dto.StartTimeLayout; format is "full" (default) or "medium".
// Unparseable strings are returned unchanged.
func Datetime(value interface{}, format string) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := time.Parse(dto.StartTimeLayout, v)
		if err != nil {
			return v
		}
		t = parsed
	default:
		return fmt.Sprint(value)
	}

	if format == "medium" {
		return t.Format(mediumLayout)
	}
	return t.Format(fullLayout)
}
