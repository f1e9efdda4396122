package articles

import (
	"iter"

	"github.com/yuin/goldmark/ast"
)

// Phase tells whether a walk event opens or closes a node.
type Phase uint8

const (
	Entering Phase = iota + 1
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Walk yields every node under root depth first, once when entering and once
// when exiting. Breaking out of the range loop stops the traversal.
func Walk(root ast.Node) iter.Seq2[ast.Node, Phase] {
	return func(yield func(ast.Node, Phase) bool) {
		if root == nil {
			return
		}
		_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
			phase := Exiting
			if entering {
				phase = Entering
			}
			if !yield(node, phase) {
				return ast.WalkStop, nil
			}
			return ast.WalkContinue, nil
		})
	}
}
