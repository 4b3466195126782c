package render

import (
	"strings"
	"testing"

	"github.com/Triex/0x1/pkg/vdom"
)

func mustRender(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := ToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{"id": "main"}, "hello")
	if got := mustRender(t, node); got != `<div id="main">hello</div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderNilAndBooleans(t *testing.T) {
	if got := mustRender(t, nil); got != "" {
		t.Errorf("nil should render to nothing, got %q", got)
	}

	node := vdom.CreateElement("div", nil, nil, true, false)
	if got := mustRender(t, node); got != "<div></div>" {
		t.Errorf("null and boolean children should vanish, got %q", got)
	}
}

func TestRenderFragmentConcatenation(t *testing.T) {
	node := vdom.CreateElement(vdom.Fragment, nil,
		vdom.CreateElement("li", nil, "a"),
		vdom.CreateElement("li", nil, "b"),
	)
	if got := mustRender(t, node); got != "<li>a</li><li>b</li>" {
		t.Errorf("fragment should concatenate without a wrapper, got %q", got)
	}
}

func TestRenderClassNameAlias(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{"className": "box"})
	got := mustRender(t, node)
	if !strings.Contains(got, `class="box"`) {
		t.Errorf("className should serialize as class, got %q", got)
	}
	if strings.Contains(got, "className") {
		t.Errorf("className must not appear verbatim, got %q", got)
	}
}

func TestRenderHTMLForAlias(t *testing.T) {
	node := vdom.CreateElement("label", vdom.Props{"htmlFor": "email"})
	if got := mustRender(t, node); !strings.Contains(got, `for="email"`) {
		t.Errorf("htmlFor should serialize as for, got %q", got)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	on := vdom.CreateElement("button", vdom.Props{"disabled": true}, "go")
	if got := mustRender(t, on); got != "<button disabled>go</button>" {
		t.Errorf("true should emit the bare attribute, got %q", got)
	}

	off := vdom.CreateElement("button", vdom.Props{"disabled": false}, "go")
	if got := mustRender(t, off); got != "<button>go</button>" {
		t.Errorf("false should omit the attribute, got %q", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	node := vdom.CreateElement("img", vdom.Props{"src": "a.png"})
	if got := mustRender(t, node); got != `<img src="a.png" />` {
		t.Errorf("got %q", got)
	}

	// Children on a void element are an authoring mistake; they must not
	// render and must not produce a closing tag.
	bad := vdom.CreateElement("br", nil, "ignored")
	got := mustRender(t, bad)
	if strings.Contains(got, "ignored") || strings.Contains(got, "</br>") {
		t.Errorf("void element leaked children, got %q", got)
	}
}

func TestRenderTextEscaped(t *testing.T) {
	node := vdom.CreateElement("p", nil, `<script>alert("x")</script>`)
	got := mustRender(t, node)
	if strings.Contains(got, "<script>") {
		t.Errorf("text content must be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got %q", got)
	}
}

func TestRenderAttributeEscaped(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{"title": `a"b`})
	if got := mustRender(t, node); !strings.Contains(got, `title="a&quot;b"`) {
		t.Errorf("attribute value must be escaped, got %q", got)
	}
}

func TestRenderRawUnescaped(t *testing.T) {
	node := vdom.Raw("<b>bold</b>")
	if got := mustRender(t, node); got != "<b>bold</b>" {
		t.Errorf("raw nodes bypass escaping, got %q", got)
	}
}

func TestRenderDangerouslySetInnerHTML(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{
		"dangerouslySetInnerHTML": "<em>markup</em>",
	})
	got := mustRender(t, node)
	if got != "<div><em>markup</em></div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderComponent(t *testing.T) {
	greet := func(props vdom.Props) *vdom.VNode {
		return vdom.CreateElement("h1", nil, "hi ", props["name"])
	}
	node := vdom.CreateElement(greet, vdom.Props{"name": "sam"})
	if got := mustRender(t, node); got != "<h1>hi sam</h1>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderComponentPanicContained(t *testing.T) {
	boom := func(props vdom.Props) *vdom.VNode {
		panic("render failed hard")
	}
	node := vdom.CreateElement(boom, nil)

	dev := NewRenderer(Config{Dev: true})
	got, err := dev.RenderToString(node)
	if err != nil {
		t.Fatalf("containment must not surface an error: %v", err)
	}
	if !strings.Contains(got, "render failed hard") {
		t.Errorf("dev output should carry the panic message, got %q", got)
	}

	prod := NewRenderer(Config{Dev: false})
	got, err = prod.RenderToString(node)
	if err != nil {
		t.Fatalf("containment must not surface an error: %v", err)
	}
	if strings.Contains(got, "render failed hard") {
		t.Errorf("prod output must not leak the panic message, got %q", got)
	}
}

func TestRenderHandlerMarkers(t *testing.T) {
	node := vdom.CreateElement("button", vdom.Props{
		"onClick": func() {},
	}, "go")
	got := mustRender(t, node)
	if strings.Contains(got, "func") {
		t.Errorf("handlers must never serialize, got %q", got)
	}
	if !strings.Contains(got, `data-on-click="true"`) {
		t.Errorf("expected hydration marker, got %q", got)
	}
}

func TestRenderStyleMap(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{
		"style": map[string]string{"color": "red", "border": "none"},
	})
	if got := mustRender(t, node); !strings.Contains(got, `style="border: none; color: red"`) {
		t.Errorf("style map should serialize sorted, got %q", got)
	}
}

func TestRenderDeterministicAttributeOrder(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{"b": "2", "a": "1", "c": "3"})
	want := `<div a="1" b="2" c="3"></div>`
	for i := 0; i < 5; i++ {
		if got := mustRender(t, node); got != want {
			t.Fatalf("attribute order not deterministic: %q", got)
		}
	}
}

func TestRenderPurity(t *testing.T) {
	node := vdom.CreateElement("div", vdom.Props{"id": "x"},
		vdom.CreateElement("span", nil, "inner"),
	)
	first := mustRender(t, node)
	second := mustRender(t, node)
	if first != second {
		t.Errorf("double render diverged: %q vs %q", first, second)
	}
}

func TestRenderUnknownTypePlaceholder(t *testing.T) {
	node := vdom.CreateElement(struct{}{}, nil)
	got := mustRender(t, node)
	if !strings.Contains(got, "unable to render unknown element type") {
		t.Errorf("expected placeholder comment, got %q", got)
	}
}

func TestRenderPretty(t *testing.T) {
	node := vdom.CreateElement("div", nil,
		vdom.CreateElement("p", nil, "x"),
	)
	r := NewRenderer(Config{Pretty: true})
	got, err := r.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", got)
	}
}

func TestRenderToWriter(t *testing.T) {
	var sb strings.Builder
	node := vdom.CreateElement("span", nil, "streamed")
	if err := NewRenderer(Config{}).RenderToWriter(&sb, node); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "<span>streamed</span>" {
		t.Errorf("got %q", sb.String())
	}
}
