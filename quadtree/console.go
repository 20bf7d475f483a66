package quadtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type palette struct {
	branch, leaf, entry *color.Color
}

func makePalette(colored bool) palette {
	p := palette{
		branch: color.New(color.FgBlue, color.Bold),
		leaf:   color.New(color.FgGreen),
		entry:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.branch, p.leaf, p.entry} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Outline writes an indented outline of the tree to w, one line per node and
// one line per entry. With colored set, branches, leaves and entries are
// highlighted with ANSI escape sequences.
func (t *Tree[T]) Outline(w io.Writer, colored bool) error {
	return t.outline(w, colored, 0)
}

// Print writes the outline of the tree to stdout. If stdout is a terminal,
// the output is colored and lines are cut to the terminal's width.
func (t *Tree[T]) Print() {
	fd := int(os.Stdout.Fd())
	width, colored := 0, term.IsTerminal(fd)
	if colored {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	if err := t.outline(os.Stdout, colored, width); err != nil {
		tracer().Errorf("quadtree print: %s", err.Error())
	}
}

// outline cuts lines longer than width runes; width 0 means no limit.
func (t *Tree[T]) outline(w io.Writer, colored bool, width int) error {
	colors := makePalette(colored)
	bw := bufio.NewWriter(w)
	line := func(c *color.Color, indent int, s string) {
		s = strings.Repeat("  ", indent) + s
		if width > 0 {
			if r := []rune(s); len(r) > width {
				s = string(r[:width-1]) + "…"
			}
		}
		bw.WriteString(c.Sprint(s))
		bw.WriteByte('\n')
	}
	var dump func(n *node[T], name string, level int)
	dump = func(n *node[T], name string, level int) {
		if !n.isLeaf() {
			line(colors.branch, level, fmt.Sprintf("%s %v", name, n.region))
			for i, child := range n.children {
				dump(child, Quadrant(i).String(), level+1)
			}
			return
		}
		line(colors.leaf, level, fmt.Sprintf("%s %v: %d entries", name, n.region, len(n.entries)))
		for _, e := range n.entries {
			line(colors.entry, level+1, fmt.Sprintf("%v => %v", e.Point, e.Value))
		}
	}
	dump(t.root, "root", 0)
	return bw.Flush()
}
