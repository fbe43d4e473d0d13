package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for construction, encoding and decoding.
var (
	// ErrNoSymbols indicates an empty frequency table.
	ErrNoSymbols = errors.New("huffman: no symbols")

	// ErrBadWeight indicates a non-positive frequency.
	ErrBadWeight = errors.New("huffman: weights must be positive")

	// ErrUnknownRune indicates an encode input rune absent from the
	// tree's alphabet.
	ErrUnknownRune = errors.New("huffman: rune not in alphabet")

	// ErrBadBit indicates a decode input byte other than '0' or '1'.
	ErrBadBit = errors.New("huffman: bit string contains a non-bit")

	// ErrTruncated indicates a decode input that ends between leaves.
	ErrTruncated = errors.New("huffman: bit string ends mid-symbol")
)

// node is one tree node; leaves carry a symbol.
type node struct {
	weight      int
	symbol      rune
	leaf        bool
	seq         int // creation order, the deterministic tie-break
	left, right *node
}

// nodeHeap is a min-heap over weight, then creation order.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return x
}

// Tree is an immutable Huffman tree with its code table.
type Tree struct {
	root  *node
	codes map[rune]string
}

// Build constructs the Huffman tree for the given frequency table.
// Every weight must be positive. The tree is deterministic: leaves are
// seeded in sorted symbol order and ties merge oldest-first.
//
// Complexity: Time O(n log n), Space O(n).
func Build(freq map[rune]int) (*Tree, error) {
	if len(freq) == 0 {
		return nil, ErrNoSymbols
	}
	symbols := make([]rune, 0, len(freq))
	for r, w := range freq {
		if w <= 0 {
			return nil, fmt.Errorf("%w: %q has weight %d", ErrBadWeight, r, w)
		}
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	h := make(nodeHeap, 0, len(symbols))
	seq := 0
	for _, r := range symbols {
		h = append(h, &node{weight: freq[r], symbol: r, leaf: true, seq: seq})
		seq++
	}
	heap.Init(&h)

	// Merge the two lightest subtrees until one root remains.
	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{weight: a.weight + b.weight, seq: seq, left: a, right: b})
		seq++
	}

	t := &Tree{root: h[0], codes: make(map[rune]string, len(symbols))}
	if t.root.leaf {
		// Degenerate single-symbol alphabet: give it a one-bit code.
		t.codes[t.root.symbol] = "0"
	} else {
		t.collect(t.root, "")
	}

	return t, nil
}

// collect assigns codes leaf-down: '0' left, '1' right.
func (t *Tree) collect(n *node, prefix string) {
	if n.leaf {
		t.codes[n.symbol] = prefix

		return
	}
	t.collect(n.left, prefix+"0")
	t.collect(n.right, prefix+"1")
}

// Codes returns a copy of the symbol→code table.
func (t *Tree) Codes() map[rune]string {
	out := make(map[rune]string, len(t.codes))
	for r, c := range t.codes {
		out[r] = c
	}

	return out
}

// Code returns the code of a single symbol.
func (t *Tree) Code(r rune) (string, error) {
	c, ok := t.codes[r]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRune, r)
	}

	return c, nil
}

// Encode translates s into its bit string.
func (t *Tree) Encode(s string) (string, error) {
	var sb strings.Builder
	for _, r := range s {
		c, ok := t.codes[r]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownRune, r)
		}
		sb.WriteString(c)
	}

	return sb.String(), nil
}

// Decode translates a bit string back into text: walk left on '0',
// right on '1', emit and restart at the root on every leaf.
func (t *Tree) Decode(bits string) (string, error) {
	var sb strings.Builder
	if t.root.leaf {
		// Single-symbol alphabet: every '0' is one occurrence.
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", fmt.Errorf("%w: %q at %d", ErrBadBit, bits[i], i)
			}
			sb.WriteRune(t.root.symbol)
		}

		return sb.String(), nil
	}

	cur := t.root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.left
		case '1':
			cur = cur.right
		default:
			return "", fmt.Errorf("%w: %q at %d", ErrBadBit, bits[i], i)
		}
		if cur.leaf {
			sb.WriteRune(cur.symbol)
			cur = t.root
		}
	}
	if cur != t.root {
		return "", ErrTruncated
	}

	return sb.String(), nil
}

// WPL reports the weighted path length: Σ weight(leaf)·depth(leaf).
func (t *Tree) WPL() int {
	return wpl(t.root, 0)
}

func wpl(n *node, depth int) int {
	if n.leaf {
		return n.weight * depth
	}

	return wpl(n.left, depth+1) + wpl(n.right, depth+1)
}
