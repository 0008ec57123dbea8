package tree

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
)

// PromoteProbability is the chance that a newly created node becomes an
// eligible parent for later nodes.
const PromoteProbability = 0.7

// Generator creates nodes and trees from a single deterministic random stream.
// A Generator is not safe for concurrent use.
type Generator struct {
	seed uint64
	rng  *rand.Rand
	ids  io.Reader
}

// NewGenerator returns a Generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return NewSeededGenerator(rand.Uint64())
}

// NewSeededGenerator returns a Generator whose node selection and UUIDs are
// fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], seed^0xdeadbeef)
	src := rand.NewChaCha8(key)
	return &Generator{
		seed: seed,
		rng:  rand.New(src),
		ids:  src,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 { return g.seed }

// NewNode creates a childless node. An empty id is replaced by a fresh UUID,
// an empty parentID marks a root, and an empty value is replaced by a short
// random placeholder such as "Node 1f3a9c0e".
func (g *Generator) NewNode(id, parentID, value string) *Node {
	if id == "" {
		id = g.newUUID().String()
	}
	if value == "" {
		u := g.newUUID()
		value = "Node " + hex.EncodeToString(u[:4])
	}
	n := &Node{
		Type:     NodeType,
		ID:       id,
		Value:    value,
		Children: []*Node{},
	}
	if parentID != "" {
		n.ParentID = &parentID
	}
	return n
}

// Build generates a tree of exactly total nodes and returns it as a
// one-element slice holding the root. Totals below one are treated as one.
//
// Each iteration picks a parent uniformly from the eligible set, attaches a
// new child to it, and promotes the child into the eligible set with
// probability [PromoteProbability]. The root is always eligible, so a parent
// is always available.
func (g *Generator) Build(total int) []*Node {
	root := g.NewNode("", "", RootValue)
	eligible := []*Node{root}
	created := 1

	for created < max(total, 1) {
		parent := eligible[g.rng.IntN(len(eligible))]
		child := g.NewNode("", parent.ID, "")
		parent.AddChild(child)
		created++

		if g.rng.Float64() < PromoteProbability {
			eligible = append(eligible, child)
		}
	}

	return []*Node{root}
}

func (g *Generator) newUUID() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(g.ids))
}
