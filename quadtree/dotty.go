package quadtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the node structure of the tree in Graphviz DOT format
// (for debugging purposes). Leaves show their region and number of entries.
func (t *Tree[T]) Dot(w io.Writer) error {
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	t.root.walk(func(n *node[T]) bool {
		ID := ids.alloc(n)
		if n.isLeaf() {
			label := fmt.Sprintf("%v\\n%d entries", n.region, len(n.entries))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true, len(n.entries)))
			return true
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d\" %s];\n", ID, n.depth, nodeDotStyles(false, 0))
		for i, child := range n.children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%s];\n", ID, ids.alloc(child), Quadrant(i))
		}
		return true
	})
	_, err := fmt.Fprintf(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n%s%s}\n",
		nodelist.String(), edgelist.String())
	if err != nil {
		tracer().Errorf("quadtree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool, count int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(count, len(hexcolors)-1)])
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
