package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/treeseed/pkg/errors"
	"github.com/matzehuels/treeseed/pkg/tree"
)

// ReadJSON decodes a document written by [WriteJSON] from r.
//
// The input must be a JSON array of node objects:
//
//	[
//	  {"type": "node", "id": "…", "parentId": null, "value": "Root",
//	   "isDeleted": false, "children": [ … ]}
//	]
//
// ReadJSON only checks that the input is well-formed JSON of that shape; use
// [tree.Validate] to check the tree invariants. A missing children field
// decodes as an empty list. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]*tree.Node, error) {
	var roots []*tree.Node
	if err := json.NewDecoder(r).Decode(&roots); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	tree.Walk(roots, func(n *tree.Node, _ int) bool {
		if n.Children == nil {
			n.Children = []*tree.Node{}
		}
		return true
	})
	return roots, nil
}

// ImportJSON reads the JSON file at path and returns the decoded forest.
// A missing file is reported as [errors.ErrCodeFileNotFound].
func ImportJSON(path string) ([]*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	roots, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roots, nil
}
