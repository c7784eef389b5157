package orderedset

import (
	"fmt"
	"io"

	"github.com/npillmayer/orderedset/btree"
)

// Set2Dot outputs the internal structure of a Set in Graphviz DOT format
// (for debugging purposes).
//
// Parent/child edges are drawn solid, sibling links dashed. Nodes of one
// level are ranked together.
func Set2Dot[K any](s *Set[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if s == nil || s.IsEmpty() {
		io.WriteString(w, "}\n")
		return
	}
	nodelist, edgelist, siblings := "", "", ""
	var ranks [][]int
	s.tree.Walk(func(v btree.NodeView[K]) bool {
		if len(ranks) == v.Depth {
			ranks = append(ranks, nil)
		}
		ranks[v.Depth] = append(ranks[v.Depth], v.ID)
		var label string
		if v.Value {
			label = fmt.Sprintf("%v", v.Min)
		} else {
			label = fmt.Sprintf("%d\\n%v … %v", v.Size, v.Min, v.Max)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", v.ID, label, nodeDotStyles(v.Value, v.LeafHolder))
		for _, c := range v.Children {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", v.ID, c)
		}
		if v.Next != 0 {
			siblings += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", v.ID, v.Next)
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, siblings)
	for _, rank := range ranks {
		io.WriteString(w, "{rank=same;")
		for _, id := range rank {
			fmt.Fprintf(w, " \"%d\";", id)
		}
		io.WriteString(w, "}\n")
	}
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isvalue bool, leafholder bool) string {
	s := ",style=filled"
	if isvalue {
		s += ",shape=box"
	} else if leafholder {
		s += ",color=black,fillcolor=\"" + hexcolors[1] + "\",shape=circle"
	} else {
		s += ",color=black,fillcolor=\"" + hexcolors[3] + "\",shape=circle"
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
