package patch

import (
	"slices"
	"strings"

	"github.com/pthm/hxui/lib/style"
)

// Node is a retained in-memory element: an ordered class list and a style
// map. It implements ClassSurface.
type Node struct {
	classes []string
	style   style.Style
}

// NewNode returns a node with the given classes and a copy of st.
func NewNode(classes []string, st style.Style) *Node {
	n := &Node{style: st.Clone()}
	if n.style == nil {
		n.style = style.Style{}
	}
	for _, c := range classes {
		n.ToggleClass(c, true)
	}
	return n
}

func (n *Node) SetProperty(name, value string) {
	n.style[name] = value
}

func (n *Node) RemoveProperty(name string) {
	delete(n.style, name)
}

// ToggleClass adds class at the end of the list or removes it.
func (n *Node) ToggleClass(class string, on bool) {
	i := slices.Index(n.classes, class)
	switch {
	case on && i < 0:
		n.classes = append(n.classes, class)
	case !on && i >= 0:
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Property returns the value of a style property.
func (n *Node) Property(name string) (string, bool) {
	v, ok := n.style[name]
	return v, ok
}

func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

func (n *Node) Style() style.Style {
	return n.style.Clone()
}

// ClassAttr renders the class attribute value.
func (n *Node) ClassAttr() string {
	return strings.Join(n.classes, " ")
}
