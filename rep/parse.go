// SPDX-License-Identifier: MIT

package rep

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	opParse      = "Parse"
	opFromNested = "FromNested"

	// groupTag marks a composite element once braces are rewritten.
	groupTag = "!c"
)

var braceRewriter = strings.NewReplacer("{", groupTag+" [", "}", "]")

// Parse reads a numeric literal into a Tensor.
//
// Implementation:
//   - Stage 1: rewrite "{...}" groups into "!c [...]" flow sequences.
//   - Stage 2: decode into a yaml.Node tree.
//   - Stage 3: walk the tree depth first, collecting elements in document
//     order and checking that siblings share a shape.
//   - Stage 4: reverse the collected outer-to-inner shape so Dims[0] is the
//     innermost (fastest) axis.
//
// Errors: ErrSyntax, ErrNumber, ErrRagged, ErrTooDeep, ErrGroup.
func Parse(literal string, opts ...Option) (*Tensor, error) {
	o := gatherOptions(opts...)
	src := strings.TrimSpace(literal)
	if src == "" {
		return nil, repErrorf(opParse, ErrSyntax)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(braceRewriter.Replace(src)), &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opParse, ErrSyntax, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) != 1 {
			return nil, repErrorf(opParse, ErrSyntax)
		}
		root = root.Content[0]
	}
	w := nodeWalker{opts: o}
	shape, err := w.walk(root, 0)
	if err != nil {
		return nil, repErrorf(opParse, err)
	}
	slices.Reverse(shape)
	tracer().Debugf("rep: parsed literal with dims %v, %d elements", shape, len(w.elements))
	return &Tensor{Dims: shape, Elements: w.elements}, nil
}

// MustParse is Parse that panics on error. Intended for tests and constants.
func MustParse(literal string, opts ...Option) *Tensor {
	t, err := Parse(literal, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

type nodeWalker struct {
	opts     Options
	elements []Element
}

// walk returns the outer-to-inner shape of n.
func (w *nodeWalker) walk(n *yaml.Node, depth int) ([]int, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		c, err := ParseNumber(n.Value, w.opts.prec)
		if err != nil {
			return nil, err
		}
		w.elements = append(w.elements, Element{c})
		return nil, nil
	case yaml.SequenceNode:
		if n.Tag == groupTag {
			return nil, w.group(n)
		}
		if depth >= w.opts.maxDepth {
			return nil, ErrTooDeep
		}
		var sub []int
		for i, child := range n.Content {
			s, err := w.walk(child, depth+1)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				sub = s
			} else if !slices.Equal(sub, s) {
				return nil, ErrRagged
			}
		}
		return append([]int{len(n.Content)}, sub...), nil
	default:
		return nil, ErrSyntax
	}
}

func (w *nodeWalker) group(n *yaml.Node) error {
	e := make(Element, 0, len(n.Content))
	for _, child := range n.Content {
		if child.Kind != yaml.ScalarNode {
			return ErrGroup
		}
		c, err := ParseNumber(child.Value, w.opts.prec)
		if err != nil {
			return err
		}
		e = append(e, c)
	}
	w.elements = append(w.elements, e)
	return nil
}

// ParseNumber reads one real component. Besides decimal and exponent forms it
// accepts NaN and signed Inf spellings (case-insensitive, YAML ".inf" style too).
func ParseNumber(s string, prec uint) (Component, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", ".nan":
		return NaNComponent(), nil
	case "inf", "+inf", ".inf", "+.inf", "infinity", "+infinity":
		return Component{Value: new(big.Float).SetInf(false)}, nil
	case "-inf", "-.inf", "-infinity":
		return Component{Value: new(big.Float).SetInf(true)}, nil
	}
	f, _, err := big.ParseFloat(s, 0, prec, big.ToNearestEven)
	if err != nil {
		return Component{}, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return Component{Value: f}, nil
}
