package vdom

import (
	"strings"
	"testing"
)

func PanickyHeader(props Props) *VNode {
	panic("header exploded")
}

func TestInvokeComponentContainsPanicDev(t *testing.T) {
	node := InvokeComponent(PanickyHeader, Props{}, true)
	if node == nil {
		t.Fatal("expected an error node")
	}

	var texts []string
	var walk func(*VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		if n.Text != "" {
			texts = append(texts, n.Text)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)
	all := strings.Join(texts, "\n")

	if !strings.Contains(all, "PanickyHeader") {
		t.Errorf("dev panel should name the component, got:\n%s", all)
	}
	if !strings.Contains(all, "header exploded") {
		t.Errorf("dev panel should carry the panic message, got:\n%s", all)
	}
}

func TestInvokeComponentContainsPanicProd(t *testing.T) {
	node := InvokeComponent(PanickyHeader, Props{}, false)
	if node == nil {
		t.Fatal("expected an error node")
	}

	var all string
	var walk func(*VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		all += n.Text
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)

	if strings.Contains(all, "header exploded") {
		t.Errorf("prod notice must not leak the panic message, got:\n%s", all)
	}
	if all == "" {
		t.Error("prod notice should carry a generic message")
	}
}

func TestInvokeComponentPassesProps(t *testing.T) {
	comp := func(props Props) *VNode {
		return Text(props["greeting"].(string))
	}
	node := InvokeComponent(comp, Props{"greeting": "hello"}, true)
	if node.Text != "hello" {
		t.Errorf("expected hello, got %q", node.Text)
	}
}

func TestComponentName(t *testing.T) {
	if got := componentName(PanickyHeader); got != "PanickyHeader" {
		t.Errorf("expected PanickyHeader, got %q", got)
	}
	if got := componentName(nil); got != "nil" {
		t.Errorf("expected nil, got %q", got)
	}
}

func TestComponentIdentityDistinguishesKeys(t *testing.T) {
	comp := ComponentFunc(func(props Props) *VNode { return nil })
	plain := componentIdentity(comp, Props{})
	keyed := componentIdentity(comp, Props{"key": "a"})
	if plain == keyed {
		t.Error("keyed mounts should have distinct identities")
	}
	if !strings.HasSuffix(keyed, "/a") {
		t.Errorf("expected key suffix, got %q", keyed)
	}
}
