package templates

// minimalTemplate is a single-page project: one app file, one stylesheet.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single page and a stylesheet",
		Files: map[string]string{
			"0x1.json": configJSON,
			"go.mod":   goModFile,
			"app/main.go": `package main

import (
	"net/http"

	"github.com/Triex/0x1/pkg/ssr"
	"github.com/Triex/0x1/pkg/vdom"
)

func HomePage(r *http.Request) *vdom.VNode {
	return vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("{{.ProjectName}}")),
		vdom.P(vdom.Text("Edit app/main.go to get started.")),
	)
}

func main() {
	server := ssr.New(ssr.WithDev(true))
	http.ListenAndServe("localhost:3000", server.Handler(HomePage))
}
`,
			"static/style.css": `body {
  font-family: system-ui, sans-serif;
  margin: 0;
}

.container {
  max-width: 40rem;
  margin: 4rem auto;
  padding: 0 1rem;
}
`,
		},
	}
}

// fullTemplate adds a counter component, a shared store, and a second page.
func fullTemplate() *Template {
	return &Template{
		Name:        "full",
		Description: "Pages, a stateful component, and a shared store",
		Files: map[string]string{
			"0x1.json": configJSON,
			"go.mod":   goModFile,
			"app/main.go": `package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Triex/0x1/pkg/ssr"
	"github.com/Triex/0x1/pkg/vdom"
)

func main() {
	server := ssr.New(ssr.WithDev(true))

	r := chi.NewRouter()
	server.Routes(r, map[string]ssr.PageFunc{
		"/":      HomePage,
		"/about": AboutPage,
	})

	http.ListenAndServe("localhost:3000", r)
}

func HomePage(req *http.Request) *vdom.VNode {
	return Layout("Home",
		vdom.H1(vdom.Text("{{.ProjectName}}")),
		vdom.CreateElement(Counter, vdom.Props{"label": "Clicks"}),
	)
}

func AboutPage(req *http.Request) *vdom.VNode {
	return Layout("About",
		vdom.H1(vdom.Text("About")),
		vdom.P(vdom.Text("{{.Description}}")),
	)
}

func Layout(title string, children ...*vdom.VNode) *vdom.VNode {
	nav := vdom.Nav(
		vdom.A(vdom.Href("/"), vdom.Text("Home")),
		vdom.A(vdom.Href("/about"), vdom.Text("About")),
	)
	body := append([]*vdom.VNode{nav}, children...)
	return vdom.Div(vdom.Class("container"), body)
}
`,
			"app/counter.go": `package main

import (
	"fmt"

	"github.com/Triex/0x1/pkg/hooks"
	"github.com/Triex/0x1/pkg/vdom"
)

func Counter(props vdom.Props) *vdom.VNode {
	count, setCount := hooks.UseState(0)
	label, _ := props["label"].(string)

	return vdom.Div(vdom.Class("counter"),
		vdom.Span(vdom.Text(fmt.Sprintf("%s: %d", label, count))),
		vdom.Button(
			vdom.OnClick(func() { setCount(count + 1) }),
			vdom.Text("+1"),
		),
	)
}
`,
			"app/store.go": `package main

import "github.com/Triex/0x1/pkg/store"

// AppState is shared across pages.
type AppState struct {
	Theme string
	User  string
}

var App = store.New(AppState{Theme: "light"})
`,
			"static/style.css": `body {
  font-family: system-ui, sans-serif;
  margin: 0;
}

.container {
  max-width: 40rem;
  margin: 4rem auto;
  padding: 0 1rem;
}

.counter {
  display: flex;
  gap: 0.5rem;
  align-items: center;
}

nav a {
  margin-right: 1rem;
}
`,
		},
	}
}

const configJSON = `{
  "name": "{{.ProjectName}}",
  "description": "{{.Description}}",
  "host": "localhost",
  "port": 3000,
  "appDir": "app",
  "distDir": "dist",
  "staticDir": "static"{{if .Tailwind}},
  "tailwind": true{{end}}
}
`

const goModFile = `module {{.ModulePath}}

go 1.23.0

require (
	github.com/Triex/0x1 latest
	github.com/go-chi/chi/v5 v5.2.3
)
`
