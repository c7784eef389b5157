package orderedset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/orderedset/btree"
	"golang.org/x/term"
)

// Palette holds the colors used by Dump for the different node roles.
type Palette struct {
	Inner      *color.Color
	LeafHolder *color.Color
	Value      *color.Color
}

// DefaultPalette is used by Dump if no palette is given.
var DefaultPalette = Palette{
	Inner:      color.New(color.FgMagenta),
	LeafHolder: color.New(color.FgBlue),
	Value:      color.New(color.FgGreen, color.Bold),
}

// Dump prints the tree structure of a Set level by level, one line per
// level, for debugging purposes.
//
// Inner nodes and leaf-holders are rendered as [min…max|size], value nodes as
// their key. If w is a terminal, node roles are colorized using palette
// (DefaultPalette if nil); otherwise the output is plain text.
func Dump[K any](s *Set[K], w io.Writer, palette *Palette) {
	if palette == nil {
		palette = &DefaultPalette
	}
	colorize := isTerminal(w)
	var levels [][]string
	if s != nil {
		s.tree.Walk(func(v btree.NodeView[K]) bool {
			if len(levels) == v.Depth {
				levels = append(levels, nil)
			}
			var item string
			var c *color.Color
			switch {
			case v.Value:
				item, c = fmt.Sprintf("%v", v.Min), palette.Value
			case v.LeafHolder:
				item, c = fmt.Sprintf("[%v…%v|%d]", v.Min, v.Max, v.Size), palette.LeafHolder
			default:
				item, c = fmt.Sprintf("[%v…%v|%d]", v.Min, v.Max, v.Size), palette.Inner
			}
			levels[v.Depth] = append(levels[v.Depth], paint(c, item, colorize))
			return true
		})
	}
	if len(levels) == 0 {
		io.WriteString(w, "<empty>\n")
		return
	}
	for depth, level := range levels {
		fmt.Fprintf(w, "%2d: %s\n", depth, strings.Join(level, " "))
	}
}

func paint(c *color.Color, s string, colorize bool) string {
	if c == nil || !colorize {
		return s
	}
	painted := *c
	painted.EnableColor()
	return painted.Sprint(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
