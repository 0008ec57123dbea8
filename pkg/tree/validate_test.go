package tree

import (
	"testing"

	"github.com/matzehuels/treeseed/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(roots []*Node) []*Node
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(r []*Node) []*Node { return r },
		},
		{
			name:    "no roots",
			mutate:  func([]*Node) []*Node { return nil },
			wantErr: true,
		},
		{
			name:    "two roots",
			mutate:  func(r []*Node) []*Node { return append(r, sampleTree()[0]) },
			wantErr: true,
		},
		{
			name: "root with parent",
			mutate: func(r []*Node) []*Node {
				p := "x"
				r[0].ParentID = &p
				return r
			},
			wantErr: true,
		},
		{
			name: "wrong type",
			mutate: func(r []*Node) []*Node {
				r[0].Children[1].Type = "leaf"
				return r
			},
			wantErr: true,
		},
		{
			name: "deleted node",
			mutate: func(r []*Node) []*Node {
				r[0].Children[0].Children[0].IsDeleted = true
				return r
			},
			wantErr: true,
		},
		{
			name: "duplicate id",
			mutate: func(r []*Node) []*Node {
				r[0].Children[1].ID = "a"
				return r
			},
			wantErr: true,
		},
		{
			name: "mismatched parent",
			mutate: func(r []*Node) []*Node {
				other := "b"
				r[0].Children[0].Children[0].ParentID = &other
				return r
			},
			wantErr: true,
		},
		{
			name: "missing child parent",
			mutate: func(r []*Node) []*Node {
				r[0].Children[1].ParentID = nil
				return r
			},
			wantErr: true,
		},
		{
			name: "cycle",
			mutate: func(r []*Node) []*Node {
				a := r[0].Children[0]
				a.Children[0].AddChild(a)
				return r
			},
			wantErr: true,
		},
		{
			name: "empty id",
			mutate: func(r []*Node) []*Node {
				r[0].Children[1].ID = ""
				return r
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(sampleTree()))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidTree) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTree)
			}
		})
	}
}
