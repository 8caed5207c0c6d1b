// Package views holds the site and admin pages. Pages are html/template
// files embedded in the binary and exposed as templ components.
package views

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/views/helpers"
)

//go:embed templates
var files embed.FS

var (
	loadOnce sync.Once
	pages    map[string]*template.Template
	loadErr  error
)

var funcs = template.FuncMap{
	"cx":         twmerge.Merge,
	"price":      helpers.FormatPrice,
	"discount":   helpers.DiscountPercent,
	"rating":     helpers.FormatRating,
	"stars":      helpers.Stars,
	"scorePct":   helpers.ScorePercent,
	"embedURL":   helpers.YouTubeEmbedURL,
	"date":       helpers.FormatDate,
	"datetime":   helpers.FormatDateTime,
	"lines":      content.JoinLines,
	"splitLines": content.SplitLines,
	"rawHTML":    func(s string) template.HTML { return template.HTML(s) },
	"toJSON": func(v any) (string, error) {
		b, err := json.MarshalIndent(v, "", "  ")
		return string(b), err
	},
	"add":    func(a, b int) int { return a + b },
	"adSlot": adSlot,
	"navLink": func(active, key, href, label string) NavLink {
		return NavLink{Href: href, Label: label, Active: active == key}
	},
	"when": func(cond bool, class string) string {
		if cond {
			return class
		}
		return ""
	},
}

// NavLink is one entry of the admin sidebar.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// AdUnit is one AdSense placement.
type AdUnit struct {
	Client string
	Slot   string
}

// adSlot returns the placement for slot, or nil when ads are off or the
// slot is unset.
func adSlot(a content.AdSense, slot string) *AdUnit {
	if !a.Active() || slot == "" {
		return nil
	}
	return &AdUnit{Client: a.PublisherID, Slot: slot}
}

func load() error {
	loadOnce.Do(func() {
		base := template.New("layout").Funcs(funcs)
		base, loadErr = base.ParseFS(files, "templates/layout/*.html")
		if loadErr != nil {
			return
		}

		pages = make(map[string]*template.Template)
		for _, dir := range []string{"pages", "admin"} {
			entries, err := fs.ReadDir(files, path.Join("templates", dir))
			if err != nil {
				loadErr = err
				return
			}
			for _, entry := range entries {
				name := strings.TrimSuffix(entry.Name(), ".html")
				if dir == "admin" {
					name = "admin/" + name
				}
				src, err := fs.ReadFile(files, path.Join("templates", dir, entry.Name()))
				if err != nil {
					loadErr = err
					return
				}
				t, err := base.Clone()
				if err != nil {
					loadErr = err
					return
				}
				if t, err = t.New(name).Parse(string(src)); err != nil {
					loadErr = fmt.Errorf("parse %s: %w", name, err)
					return
				}
				pages[name] = t
			}
		}
	})
	return loadErr
}

// Page returns the named page bound to data as a component.
func Page(name string, data any) templ.Component {
	if err := load(); err != nil {
		return failed(err)
	}
	t, ok := pages[name]
	if !ok {
		return failed(fmt.Errorf("unknown page %q", name))
	}
	return templ.FromGoHTML(t, data)
}

// Names lists every page that Page can render.
func Names() []string {
	if load() != nil {
		return nil
	}
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	return names
}

func failed(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return err
	})
}
