package tree

// NodeType is the constant type tag carried by every node.
const NodeType = "node"

// RootValue is the display value given to the root of a generated tree.
const RootValue = "Root"

// Node is a single element of a generated tree. Field order matches the
// serialized document.
type Node struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	ParentID  *string `json:"parentId"`
	Value     string  `json:"value"`
	IsDeleted bool    `json:"isDeleted"`
	Children  []*Node `json:"children"`
}

// IsRoot reports whether n has no parent reference.
func (n *Node) IsRoot() bool { return n.ParentID == nil }

// AddChild appends child to n's children.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}
