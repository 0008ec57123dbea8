package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/treeseed/pkg/errors"
	"github.com/matzehuels/treeseed/pkg/tree"
)

func TestToDOT(t *testing.T) {
	roots := tree.NewSeededGenerator(3).Build(12)

	dot, err := ToDOT(roots, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("DOT does not start with digraph header:\n%s", dot)
	}
	if got := strings.Count(dot, " -> "); got != 11 {
		t.Errorf("DOT has %d edges, want 11", got)
	}
	if !strings.Contains(dot, `label="Root", penwidth=2`) {
		t.Error("root node is not highlighted")
	}
	for _, n := range tree.Flatten(roots) {
		if !strings.Contains(dot, `"`+n.ID+`" [`) {
			t.Errorf("DOT missing node %s", n.ID)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	roots := tree.NewSeededGenerator(3).Build(10)

	dot, err := ToDOT(roots, Options{Detailed: true})
	if err != nil {
		t.Fatalf("ToDOT() error = %v", err)
	}
	want := `label="Root\n` + roots[0].ID + `"`
	if !strings.Contains(dot, want) {
		t.Errorf("detailed DOT missing %s", want)
	}
}

func TestToDOTTooLarge(t *testing.T) {
	roots := tree.NewSeededGenerator(3).Build(MaxDiagramNodes + 1)

	_, err := ToDOT(roots, Options{})
	if !errors.Is(err, errors.ErrCodeTooLarge) {
		t.Errorf("ToDOT() error = %v, want %v", err, errors.ErrCodeTooLarge)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	dot, err := ToDOT(tree.NewSeededGenerator(4).Build(10), Options{})
	if err != nil {
		t.Fatal(err)
	}

	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.40 200.00"><g/></svg>`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.40 200.00" width="100" height="200">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("normalizeViewBox() = %s, want prefix %s", out, want)
	}
}
