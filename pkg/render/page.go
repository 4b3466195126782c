package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Triex/0x1/pkg/vdom"
)

// PageData describes a complete HTML document around a rendered body.
type PageData struct {
	// Body is the root node for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Meta contains meta tags for the document head.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// Scripts contains script tags to include before </body>.
	Scripts []ScriptTag

	// Styles contains inline CSS blocks for the head.
	Styles []string

	// Lang is the language attribute for the html element.
	// Defaults to "en".
	Lang string

	// LiveReload injects the dev-server reload client when set to the
	// WebSocket endpoint path. Empty disables it.
	LiveReload string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string
	Content   string
	Property  string
	HTTPEquiv string
	Charset   string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string
	Href string
	Type string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Async  bool
	Inline string
}

// RenderPage renders a complete HTML document to the writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	head := vdom.Head()
	head.Children = append(head.Children,
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	)
	if page.Title != "" {
		head.Children = append(head.Children, vdom.Title(vdom.Text(page.Title)))
	}
	for _, m := range page.Meta {
		head.Children = append(head.Children, metaNode(m))
	}
	for _, l := range page.Links {
		head.Children = append(head.Children, linkNode(l))
	}
	for _, css := range page.Styles {
		head.Children = append(head.Children, vdom.Style(vdom.Raw(css)))
	}

	body := vdom.Body()
	if page.Body != nil {
		body.Children = append(body.Children, page.Body)
	}
	for _, s := range page.Scripts {
		body.Children = append(body.Children, scriptNode(s))
	}
	if page.LiveReload != "" {
		body.Children = append(body.Children, vdom.Script(vdom.Raw(liveReloadScript(page.LiveReload))))
	}

	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	doc := vdom.Html(vdom.Lang(lang), head, body)
	return r.RenderToWriter(w, doc)
}

// RenderPageToString renders a complete HTML document to a string.
func (r *Renderer) RenderPageToString(page PageData) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func metaNode(m MetaTag) *vdom.VNode {
	node := vdom.Meta()
	if m.Charset != "" {
		node.Props["charset"] = m.Charset
	}
	if m.Name != "" {
		node.Props["name"] = m.Name
	}
	if m.Property != "" {
		node.Props["property"] = m.Property
	}
	if m.HTTPEquiv != "" {
		node.Props["http-equiv"] = m.HTTPEquiv
	}
	if m.Content != "" {
		node.Props["content"] = m.Content
	}
	return node
}

func linkNode(l LinkTag) *vdom.VNode {
	node := vdom.Link(vdom.Rel(l.Rel), vdom.Href(l.Href))
	if l.Type != "" {
		node.Props["type"] = l.Type
	}
	return node
}

func scriptNode(s ScriptTag) *vdom.VNode {
	node := vdom.Script()
	if s.Src != "" {
		node.Props["src"] = s.Src
	}
	if s.Type != "" {
		node.Props["type"] = s.Type
	}
	if s.Defer {
		node.Props["defer"] = true
	}
	if s.Async {
		node.Props["async"] = true
	}
	if s.Inline != "" {
		node.Children = append(node.Children, vdom.Raw(s.Inline))
	}
	return node
}

// liveReloadScript is the inline client for the dev server's reload
// endpoint: full reload on "reload", stylesheet swap on "css".
func liveReloadScript(endpoint string) string {
	return fmt.Sprintf(`(function(){var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+%q);ws.onmessage=function(e){var m=JSON.parse(e.data);if(m.type==="reload"){location.reload();}else if(m.type==="css"){document.querySelectorAll('link[rel="stylesheet"]').forEach(function(l){l.href=l.href.split("?")[0]+"?t="+Date.now();});}};})();`, endpoint)
}
