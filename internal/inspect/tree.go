// Package inspect renders profile structure for humans: an indented tree of
// the nesting, the flat list of addressable paths, and a per-subject
// availability summary. It exists for exploration; extraction never depends
// on it.
package inspect

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/eLbARROS13/OH-Toolkit/internal/document"
)

// Styles controls tree rendering. The zero value renders unstyled text,
// which is also what tests use.
type Styles struct {
	Key   lipgloss.Style
	Type  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI in a capable terminal.
func DefaultStyles() Styles {
	return Styles{
		Key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD966")),
		Type:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#805800")),
	}
}

// Tree writes an indented structural view of a profile, descending at most
// maxDepth object levels. Deeper objects are summarized by key count rather
// than expanded.
func Tree(w io.Writer, profile *document.Value, maxDepth int) error {
	return TreeStyled(w, profile, maxDepth, Styles{})
}

// TreeStyled is Tree with explicit styles.
func TreeStyled(w io.Writer, profile *document.Value, maxDepth int, st Styles) error {
	if profile == nil || !profile.IsObject() {
		_, err := fmt.Fprintln(w, "(not an object)")
		return err
	}
	return writeTree(w, profile, 0, maxDepth, st)
}

func writeTree(w io.Writer, node *document.Value, depth, maxDepth int, st Styles) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	for _, key := range node.Keys() {
		child, _ := node.Field(key)
		label := indent + st.Key.Render(key)

		var suffix string
		switch child.Kind() {
		case document.KindObject:
			if depth+1 >= maxDepth && child.Len() > 0 {
				suffix = st.Muted.Render(fmt.Sprintf(" {%d keys}", child.Len()))
			}
		case document.KindArray:
			suffix = st.Type.Render(fmt.Sprintf(" [%d items]", child.Len()))
		default:
			suffix = st.Type.Render(" = " + scalarPreview(child))
		}

		if _, err := fmt.Fprintln(w, label+suffix); err != nil {
			return err
		}

		if child.IsObject() && depth+1 < maxDepth {
			if err := writeTree(w, child, depth+1, maxDepth, st); err != nil {
				return err
			}
		}
	}
	return nil
}

func scalarPreview(v *document.Value) string {
	switch v.Kind() {
	case document.KindString:
		s := v.Str()
		if len(s) > 40 {
			s = s[:37] + "..."
		}
		return fmt.Sprintf("%q", s)
	case document.KindNumber:
		return v.Num().String()
	case document.KindBool:
		return fmt.Sprint(v.Boolean())
	default:
		return "null"
	}
}
