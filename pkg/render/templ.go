package render

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Triex/0x1/pkg/vdom"
)

// nodeComponent adapts a node tree to the templ.Component interface so
// 0x1 trees can be embedded in templ templates.
type nodeComponent struct {
	node     *vdom.VNode
	renderer *Renderer
}

// Render implements templ.Component.
func (c nodeComponent) Render(ctx context.Context, w io.Writer) error {
	return c.renderer.RenderToWriter(w, c.node)
}

// Templ wraps a node tree as a templ.Component.
func Templ(node *vdom.VNode) templ.Component {
	return nodeComponent{node: node, renderer: NewRenderer(Config{})}
}

// TemplWith wraps a node tree as a templ.Component using the given
// renderer configuration.
func TemplWith(node *vdom.VNode, config Config) templ.Component {
	return nodeComponent{node: node, renderer: NewRenderer(config)}
}

// FromTempl renders a templ component eagerly and wraps the markup in a
// raw node, so templ output can appear inside a 0x1 tree. The component
// is trusted to produce well-formed, escaped HTML, which templ does.
func FromTempl(ctx context.Context, c templ.Component) (*vdom.VNode, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return vdom.Raw(buf.String()), nil
}
