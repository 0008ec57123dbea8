package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treeseed/pkg/errors"
	"github.com/matzehuels/treeseed/pkg/tree"
)

// MaxDiagramNodes is the largest tree ToDOT will convert. Graphviz layout
// time grows quickly and larger diagrams are unreadable anyway.
const MaxDiagramNodes = 2000

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the node id under each value.
	// When false, only the value is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format, one box per node and one
// edge from each parent to each child. The result can be rendered with
// [RenderSVG] or saved for external Graphviz tools.
//
// Trees with more than [MaxDiagramNodes] nodes are rejected with
// [errors.ErrCodeTooLarge].
func ToDOT(roots []*tree.Node, opts Options) (string, error) {
	if n := tree.Count(roots); n > MaxDiagramNodes {
		return "", errors.New(errors.ErrCodeTooLarge, "tree has %d nodes, diagrams support at most %d", n, MaxDiagramNodes)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges [][2]string
	tree.Walk(roots, func(n *tree.Node, _ int) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, fmtAttrs(n, opts.Detailed))
		for _, c := range n.Children {
			edges = append(edges, [2]string{n.ID, c.ID})
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func fmtAttrs(n *tree.Node, detailed bool) string {
	label := n.Value
	if detailed {
		label += "\n" + n.ID
	}
	attrs := fmt.Sprintf("label=%q", label)
	if n.IsRoot() {
		attrs += ", penwidth=2"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
