// Package cli holds helpers shared by the graft command tree: log level
// parsing, terminal detection and corpus tree rendering.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/graft/pkg/corpus"
)

// ParseLevel maps a command line flag value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

// StdoutIsTerminal reports whether stdout is attached to a TTY, which
// gates colored output.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderTree renders a corpus tree as an indented listing, one slot per
// line. With color enabled, kinds and payloads are styled via termenv.
func RenderTree(n *corpus.Node, color bool) string {
	p := termenv.Ascii
	if color {
		p = termenv.ColorProfile()
	}
	var b strings.Builder
	renderNode(&b, p, n, 0)
	return b.String()
}

func renderNode(b *strings.Builder, p termenv.Profile, n *corpus.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	kind := p.String(n.Kind().String()).Foreground(p.Color("6")).String()

	switch n.Kind() {
	case corpus.KindSeq:
		fmt.Fprintf(b, "%s%s (%d)\n", indent, kind, n.Len())
		for _, child := range n.Children() {
			renderNode(b, p, child, depth+1)
		}
	case corpus.KindEmpty:
		fmt.Fprintf(b, "%s%s\n", indent, kind)
	default:
		val := p.String(leafPayload(n)).Foreground(p.Color("3")).String()
		fmt.Fprintf(b, "%s%s %s\n", indent, kind, val)
	}
}

func leafPayload(n *corpus.Node) string {
	switch n.Kind() {
	case corpus.KindInt:
		v, _ := n.AsInt()
		return fmt.Sprintf("%d", v)
	case corpus.KindUint:
		v, _ := n.AsUint()
		return fmt.Sprintf("%d", v)
	case corpus.KindFloat:
		v, _ := n.AsFloat()
		return fmt.Sprintf("%g", v)
	case corpus.KindString:
		v, _ := n.AsString()
		return fmt.Sprintf("%q", v)
	case corpus.KindBytes:
		v, _ := n.AsBytes()
		return fmt.Sprintf("0x%x", v)
	default:
		return ""
	}
}

// TreeStats summarizes a corpus tree for the validate command.
type TreeStats struct {
	Slots    int
	MaxDepth int
}

// Stats walks the tree and counts slots and nesting depth.
func Stats(n *corpus.Node) TreeStats {
	s := TreeStats{Slots: 1, MaxDepth: 1}
	for _, child := range n.Children() {
		cs := Stats(child)
		s.Slots += cs.Slots
		if cs.MaxDepth+1 > s.MaxDepth {
			s.MaxDepth = cs.MaxDepth + 1
		}
	}
	return s
}
