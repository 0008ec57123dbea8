package tree

import "testing"

func sampleTree() []*Node {
	rootID, aID := "root", "a"
	c := &Node{Type: NodeType, ID: "c", ParentID: &aID, Value: "c", Children: []*Node{}}
	a := &Node{Type: NodeType, ID: "a", ParentID: &rootID, Value: "a", Children: []*Node{c}}
	b := &Node{Type: NodeType, ID: "b", ParentID: &rootID, Value: "b", Children: []*Node{}}
	root := &Node{Type: NodeType, ID: "root", Value: RootValue, Children: []*Node{a, b}}
	return []*Node{root}
}

func TestFlattenPreOrder(t *testing.T) {
	got := Flatten(sampleTree())
	want := []string{"root", "a", "c", "b"}

	if len(got) != len(want) {
		t.Fatalf("Flatten returned %d nodes, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Flatten[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestCountAndDepth(t *testing.T) {
	tests := []struct {
		name      string
		roots     []*Node
		wantCount int
		wantDepth int
	}{
		{"empty", nil, 0, 0},
		{"single", []*Node{{Type: NodeType, ID: "r", Children: []*Node{}}}, 1, 1},
		{"sample", sampleTree(), 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.roots); got != tt.wantCount {
				t.Errorf("Count() = %d, want %d", got, tt.wantCount)
			}
			if got := Depth(tt.roots); got != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", got, tt.wantDepth)
			}
		})
	}
}

func TestWalkStopsEarly(t *testing.T) {
	visited := 0
	Walk(sampleTree(), func(*Node, int) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited %d nodes, want 2", visited)
	}
}

func TestWalkDeepChain(t *testing.T) {
	g := NewSeededGenerator(5)
	root := g.NewNode("", "", RootValue)
	cur := root
	for range 200000 {
		child := g.NewNode("", cur.ID, "")
		cur.AddChild(child)
		cur = child
	}

	roots := []*Node{root}
	if got := Depth(roots); got != 200001 {
		t.Errorf("Depth() = %d, want 200001", got)
	}
	if err := Validate(roots); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
