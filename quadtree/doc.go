/*
Package quadtree provides a mutable 2D spatial index mapping points to
client values.

The tree starts as a single leaf covering a bounding region. Once a leaf holds
more than Config.MaxValues entries it is subdivided into four quadrant leaves
(top-left, top-right, bottom-left, bottom-right) and its entries are
redistributed. Subdivision stops at Config.MaxDepth levels below the root;
leaves at that depth hold any number of entries. Prune merges branches whose
entries would again fit into a single leaf.

Boxes are closed and every node's box may be inflated by half of
Config.BorderSize on each side. Points on a shared edge, or inside the border
zone of siblings, are therefore stored in every child whose box contains them.
Such copies share an identity: Remove, Len, ForEach and Prune treat them as a
single entry. Point queries descend into the first matching child only, in the
fixed order top-left, top-right, bottom-left, bottom-right.

Status:
  - capacity-driven subdivision with depth limit and border overlap,
  - point query (live and copying), region query,
  - remove, change of position, find by value,
  - prune/join,
  - invariant checker, DOT and console dumps for debugging.

A Tree is not safe for concurrent use; callers have to synchronize access
themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package quadtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vecto'
func tracer() tracing.Trace {
	return tracing.Select("vecto")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
