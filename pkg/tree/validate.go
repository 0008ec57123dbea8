package tree

import (
	"github.com/matzehuels/treeseed/pkg/errors"
)

// Validate checks that roots form a well-formed seed document:
//   - exactly one root, with no parent reference
//   - every node has type "node", a non-empty unique id, and is not deleted
//   - every child's parentId equals the id of the node that contains it
//
// Unique ids also guarantee the walk terminates, since a node reachable
// twice would repeat its id. Violations are reported as
// [errors.ErrCodeInvalidTree].
func Validate(roots []*Node) error {
	if len(roots) != 1 {
		return errors.New(errors.ErrCodeInvalidTree, "expected exactly one root, got %d", len(roots))
	}
	if roots[0] == nil {
		return errors.New(errors.ErrCodeInvalidTree, "root is null")
	}
	if !roots[0].IsRoot() {
		return errors.New(errors.ErrCodeInvalidTree, "root %s has parent %s", roots[0].ID, *roots[0].ParentID)
	}

	seen := make(map[string]struct{})
	var err error
	Walk(roots, func(n *Node, _ int) bool {
		err = checkNode(n, seen)
		return err == nil
	})
	return err
}

func checkNode(n *Node, seen map[string]struct{}) error {
	if n.Type != NodeType {
		return errors.New(errors.ErrCodeInvalidTree, "node %s has type %q", n.ID, n.Type)
	}
	if n.ID == "" {
		return errors.New(errors.ErrCodeInvalidTree, "node with value %q has no id", n.Value)
	}
	if _, dup := seen[n.ID]; dup {
		return errors.New(errors.ErrCodeInvalidTree, "duplicate node id %s", n.ID)
	}
	seen[n.ID] = struct{}{}
	if n.IsDeleted {
		return errors.New(errors.ErrCodeInvalidTree, "node %s is marked deleted", n.ID)
	}
	for _, c := range n.Children {
		if c == nil {
			return errors.New(errors.ErrCodeInvalidTree, "node %s has a null child", n.ID)
		}
		if c.ParentID == nil {
			return errors.New(errors.ErrCodeInvalidTree, "child %s of %s has no parentId", c.ID, n.ID)
		}
		if *c.ParentID != n.ID {
			return errors.New(errors.ErrCodeInvalidTree, "child %s of %s references parent %s", c.ID, n.ID, *c.ParentID)
		}
	}
	return nil
}
