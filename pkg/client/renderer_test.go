package client

import (
	"strings"
	"testing"

	"github.com/Triex/0x1/pkg/hooks"
	"github.com/Triex/0x1/pkg/vdom"
	"github.com/Triex/0x1/pkg/vtest"
)

func TestMountElementTree(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, vdom.Div(vdom.Class("app"), vdom.H1(vdom.Text("hello"))), body)

	root, ok := body.FirstChild().(*vtest.MemElement)
	if !ok {
		t.Fatal("expected an element child")
	}
	if root.Tag != "div" || root.Attrs["class"] != "app" {
		t.Errorf("unexpected root: %s", root.OuterHTML())
	}
	if root.TextContent() != "hello" {
		t.Errorf("expected text content hello, got %q", root.TextContent())
	}
}

func TestMountReplacesPreviousContent(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, vdom.P(vdom.Text("first")), body)
	Mount(doc, vdom.P(vdom.Text("second")), body)

	if len(body.Children) != 1 {
		t.Fatalf("expected old content replaced, got %d children", len(body.Children))
	}
	if body.TextContent() != "second" {
		t.Errorf("expected second, got %q", body.TextContent())
	}
}

func TestMountNilInputNoOp(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()
	body.AppendChild(doc.CreateTextNode("existing"))

	Mount(doc, nil, body)

	if body.TextContent() != "existing" {
		t.Error("nil input must leave the container untouched")
	}
}

func TestMountStringIsMarkup(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, "<b>raw</b>", body)
	if body.Raw != "<b>raw</b>" {
		t.Errorf("string input should set innerHTML, got %q", body.Raw)
	}
}

func TestMountTextEscapesNothingButStaysText(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	MountText(doc, "<b>not markup</b>", body)
	text, ok := body.FirstChild().(*vtest.MemText)
	if !ok {
		t.Fatal("expected a text node")
	}
	if text.Data() != "<b>not markup</b>" {
		t.Errorf("got %q", text.Data())
	}
}

func TestMountDomNodePassthrough(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	ready := doc.CreateElement("section")
	Mount(doc, ready, body)
	if body.FirstChild() != ready {
		t.Error("realized nodes should attach as-is")
	}
}

func TestMountUnknownInput(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, 42, body)
	text, ok := body.FirstChild().(*vtest.MemText)
	if !ok {
		t.Fatal("expected a placeholder text node")
	}
	if !strings.Contains(text.Data(), "unable to render unknown element type") {
		t.Errorf("got %q", text.Data())
	}
}

func TestMountBindsEventListeners(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	clicks := 0
	Mount(doc, vdom.Button(
		vdom.OnClick(func() { clicks++ }),
		vdom.Text("go"),
	), body)

	button := body.FirstChild().(*vtest.MemElement)
	if button.ListenerCount("click") != 1 {
		t.Fatalf("expected one click listener, got %d", button.ListenerCount("click"))
	}
	if _, ok := button.Attrs["onclick"]; ok {
		t.Error("handler must not serialize as an attribute")
	}

	button.Dispatch("click")
	button.Dispatch("click")
	if clicks != 2 {
		t.Errorf("expected 2 clicks, got %d", clicks)
	}
}

func TestMountFragmentSplices(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, vdom.FragmentOf(
		vdom.Li(vdom.Text("a")),
		vdom.Li(vdom.Text("b")),
	), body)

	if len(body.Children) != 2 {
		t.Errorf("fragment children should splice into the container, got %d", len(body.Children))
	}
}

func TestMountComponentWithState(t *testing.T) {
	counter := func(props vdom.Props) *vdom.VNode {
		count, setCount := hooks.UseState(0)
		return vdom.Button(
			vdom.OnClick(func() { setCount(count + 1) }),
			vdom.Textf("count: %d", count),
		)
	}

	doc := vtest.NewDocument()
	body := doc.Body()
	node := func() *vdom.VNode { return vdom.CreateElement(vdom.ComponentFunc(counter), nil) }

	Mount(doc, node(), body)
	button := body.FirstChild().(*vtest.MemElement)
	if button.TextContent() != "count: 0" {
		t.Fatalf("got %q", button.TextContent())
	}

	button.Dispatch("click")
	Mount(doc, node(), body)
	button = body.FirstChild().(*vtest.MemElement)
	if button.TextContent() != "count: 1" {
		t.Errorf("state should survive the re-render, got %q", button.TextContent())
	}
}

func TestMountPanicContained(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	boom := func(props vdom.Props) *vdom.VNode {
		panic("client render broke")
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic escaped Mount: %v", r)
			}
		}()
		Mount(doc, vdom.CreateElement(vdom.ComponentFunc(boom), nil), body)
	}()

	if body.TextContent() == "" && body.Raw == "" &&
		(body.FirstChild() == nil || body.FirstChild().(*vtest.MemElement).TextContent() == "") {
		t.Error("expected an inline error rendering")
	}
}

func TestMountBooleanAttributes(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, vdom.CreateElement("input", vdom.Props{
		"disabled": true,
		"checked":  false,
		"type":     "checkbox",
	}), body)

	input := body.FirstChild().(*vtest.MemElement)
	if _, ok := input.Attrs["disabled"]; !ok {
		t.Error("true boolean should set the attribute")
	}
	if _, ok := input.Attrs["checked"]; ok {
		t.Error("false boolean must not set the attribute")
	}
}

func TestMountStyleHandling(t *testing.T) {
	doc := vtest.NewDocument()
	body := doc.Body()

	Mount(doc, vdom.CreateElement("div", vdom.Props{
		"style": map[string]string{"color": "red"},
	}), body)
	el := body.FirstChild().(*vtest.MemElement)
	if el.Styles["color"] != "red" {
		t.Errorf("style map not applied: %v", el.Styles)
	}

	Mount(doc, vdom.CreateElement("div", vdom.Props{
		"style": "margin: 0; padding: 4px",
	}), body)
	el = body.FirstChild().(*vtest.MemElement)
	if el.Styles["margin"] != "0" || el.Styles["padding"] != "4px" {
		t.Errorf("style string not parsed: %v", el.Styles)
	}
}

func TestUnmountReleasesHookState(t *testing.T) {
	identity := "widget@clienttest"
	hooks.WithComponentContext(identity, func() {
		_, set := hooks.UseState(0)
		set(7)
	})

	doc := vtest.NewDocument()
	body := doc.Body()
	body.AppendChild(doc.CreateTextNode("content"))

	Unmount(body, identity)

	if body.FirstChild() != nil {
		t.Error("container should be cleared")
	}
	hooks.WithComponentContext(identity, func() {
		count, _ := hooks.UseState(0)
		if count != 7 {
			return
		}
		t.Error("hook state should have been released")
	})
	hooks.Release(identity)
}
