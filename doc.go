// Package dynforest is an in-memory toolkit for maintaining a dynamic forest —
// trees whose edges come and go at runtime — with logarithmic path queries.
//
// 🚀 What is dynforest?
//
//	A small, focused library built around the link–cut tree:
//		• Dynamic connectivity: Link and Cut edges online, query Connected at any time
//		• Rerooting: MakeRoot turns any node into the root of its tree
//		• Path queries: PathAggregate folds sum/min/max (or your own combiner) over any path
//		• Offline companion: a classic disjoint-set union for merge-only connectivity
//
// ✨ Why choose dynforest?
//
//   - Amortized O(log n) – every forest operation, proven via the
//     preferred-path potential argument
//   - Stable handles – nodes live in an index arena, no pointer lifetimes to manage
//   - Generic aggregates – any associative, order-insensitive combine function
//   - Pure Go – no cgo
//
// Everything is organized under two subpackages:
//
//	linkcut/ — the dynamic tree: Forest, Link, Cut, MakeRoot, FindRoot,
//	           Connected, PathAggregate, Path, SetValue
//	dsu/     — disjoint-set union (union by rank + path compression) for
//	           merge-only connectivity
//
// Quick ASCII example:
//
//	  1───2───3   4───5        Link(3,4)        1───2───3───4───5
//	                         ─────────────▶
//	two trees, five nodes                       one tree, one path
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/dynforest
package dynforest
