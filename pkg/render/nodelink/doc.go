// Package nodelink renders generated trees as node-link diagrams.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(roots, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes labelled by value; the root is drawn with a heavier outline. Trees
// larger than [MaxDiagramNodes] are rejected.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is required.
package nodelink
