package vdom

import (
	"strings"
	"testing"

	"github.com/Triex/0x1/pkg/hooks"
)

func childTexts(node *VNode) []string {
	out := make([]string, 0, len(node.Children))
	for _, c := range node.Children {
		out = append(out, c.Text)
	}
	return out
}

func TestCreateElementFlattensOneLevel(t *testing.T) {
	node := CreateElement("div", nil, "a", nil, []any{"b", false, "c"})

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("expected div element, got kind=%v tag=%q", node.Kind, node.Tag)
	}
	got := childTexts(node)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected children %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCreateElementDropsBooleans(t *testing.T) {
	// Both branches of cond && node must vanish.
	node := CreateElement("span", nil, true, false, "kept")
	if len(node.Children) != 1 || node.Children[0].Text != "kept" {
		t.Errorf("expected only the text child to survive, got %v", childTexts(node))
	}
}

func TestCreateElementNilProps(t *testing.T) {
	node := CreateElement("p", nil)
	if node.Props == nil {
		t.Error("nil props should become an empty map")
	}
}

func TestCreateElementPropsChildrenWin(t *testing.T) {
	node := CreateElement("div", Props{"children": "from props"}, "variadic")
	if len(node.Children) != 1 || node.Children[0].Text != "from props" {
		t.Errorf("props children should win over variadic, got %v", childTexts(node))
	}
}

func TestCreateElementFragment(t *testing.T) {
	node := CreateElement(Fragment, nil, "x", "y")
	if node.Kind != KindFragment {
		t.Fatalf("expected fragment, got %v", node.Kind)
	}
	if len(node.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(node.Children))
	}
}

func TestCreateElementNumericChildren(t *testing.T) {
	node := CreateElement("li", nil, 42, 3.5)
	got := childTexts(node)
	if len(got) != 2 || got[0] != "42" || got[1] != "3.5" {
		t.Errorf("expected [42 3.5], got %v", got)
	}
}

func TestCreateElementKey(t *testing.T) {
	node := CreateElement("li", Props{"key": "row-1"})
	if node.Key != "row-1" {
		t.Errorf("expected key row-1, got %q", node.Key)
	}
	numeric := CreateElement("li", Props{"key": 7})
	if numeric.Key != "7" {
		t.Errorf("expected key 7, got %q", numeric.Key)
	}
}

func TestCreateElementComponent(t *testing.T) {
	comp := func(props Props) *VNode { return Text("hi") }
	node := CreateElement(comp, Props{"label": "x"}, Text("child"))

	if node.Kind != KindComponent {
		t.Fatalf("expected component node, got %v", node.Kind)
	}
	kids, ok := node.Props["children"].([]*VNode)
	if !ok || len(kids) != 1 {
		t.Errorf("expected normalized children in props, got %v", node.Props["children"])
	}
}

func TestCreateElementUnknownType(t *testing.T) {
	node := CreateElement(123, nil)
	if node.Kind != KindRaw {
		t.Fatalf("expected raw placeholder, got %v", node.Kind)
	}
	if node.Name != "int" {
		t.Errorf("expected recorded type name int, got %q", node.Name)
	}
}

func TestJsxExtractsChildrenFromProps(t *testing.T) {
	tests := []struct {
		name     string
		children any
		want     int
	}{
		{"absent", nil, 0},
		{"single", "solo", 1},
		{"slice", []any{"a", "b"}, 2},
		{"nodes", []*VNode{Text("a"), Text("b"), Text("c")}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Props{}
			if tt.children != nil {
				props["children"] = tt.children
			}
			node := Jsx("div", props, "")
			if len(node.Children) != tt.want {
				t.Errorf("expected %d children, got %d", tt.want, len(node.Children))
			}
		})
	}
}

func TestJsxKeyArgumentWins(t *testing.T) {
	node := Jsx("div", Props{"key": "from-props"}, "explicit")
	if node.Key != "explicit" {
		t.Errorf("explicit key should win, got %q", node.Key)
	}
}

func TestJsxsMatchesJsx(t *testing.T) {
	a := Jsx("ul", Props{"children": []any{"x"}}, "k")
	b := Jsxs("ul", Props{"children": []any{"x"}}, "k")
	if a.Tag != b.Tag || a.Key != b.Key || len(a.Children) != len(b.Children) {
		t.Error("Jsxs should behave identically to Jsx")
	}
}

func TestJsxDEVStringFastPath(t *testing.T) {
	src := &SourceLocation{File: "app/page.go", Line: 10}
	node := JsxDEV("div", Props{"id": "x"}, "", src)

	if node.Kind != KindElement {
		t.Fatalf("expected element, got %v", node.Kind)
	}
	if node.Source != src {
		t.Error("source location should be attached")
	}
}

func TestJsxDEVInvokesComponent(t *testing.T) {
	comp := func(props Props) *VNode {
		return CreateElement("span", nil, props["label"])
	}
	node := JsxDEV(comp, Props{"label": "ok"}, "", nil)

	if node.Kind != KindElement || node.Tag != "span" {
		t.Fatalf("expected invoked output, got kind=%v tag=%q", node.Kind, node.Tag)
	}
}

func TestJsxDEVContainsPanic(t *testing.T) {
	boom := func(props Props) *VNode {
		panic("lost the plot")
	}

	var node *VNode
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic escaped JsxDEV: %v", r)
			}
		}()
		node = JsxDEV(boom, nil, "", nil)
	}()

	if node == nil || node.Kind != KindElement {
		t.Fatal("expected an error panel node")
	}
	var found bool
	var walk func(*VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		if strings.Contains(n.Text, "lost the plot") {
			found = true
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)
	if !found {
		t.Error("error panel should carry the panic message")
	}
}

func TestJsxDEVNestedInvocationRestoresOuterContext(t *testing.T) {
	inner := func(props Props) *VNode { return Text("inner") }

	var restored bool
	outer := func(props Props) *VNode {
		before, _ := hooks.CurrentInstance()
		JsxDEV(inner, nil, "", nil)
		// After the nested invocation the outer instance must be current
		// again; a hook call would otherwise read the wrong slots.
		after, ok := hooks.CurrentInstance()
		restored = ok && after == before
		return Text("outer")
	}

	JsxDEV(outer, nil, "", nil)
	if !restored {
		t.Error("outer component lost its hook context after nested creation")
	}
}
