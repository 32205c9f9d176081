package suggest

// TrieNode is one prefix position in a PrefixIndex.
// Every complete sentence passing through the node is kept in its set,
// so a resolved node answers a prefix query without walking its subtree.
type TrieNode struct {
	children  map[rune]*TrieNode
	sentences map[string]struct{}
	terminal  bool
}

func newTrieNode() *TrieNode {
	return &TrieNode{
		children:  make(map[rune]*TrieNode),
		sentences: make(map[string]struct{}),
	}
}

// Sentences returns the sentences sharing this node's prefix, in no particular order.
func (n *TrieNode) Sentences() []string {
	out := make([]string, 0, len(n.sentences))
	for s := range n.sentences {
		out = append(out, s)
	}
	return out
}

// Terminal reports whether a recorded sentence ends exactly at this node.
func (n *TrieNode) Terminal() bool {
	return n.terminal
}

// Len is the number of sentences passing through the node.
func (n *TrieNode) Len() int {
	return len(n.sentences)
}

// PrefixIndex is a rune trie over every recorded sentence.
type PrefixIndex struct {
	root  *TrieNode
	nodes int
	count int
}

// NewPrefixIndex returns an index holding only the empty prefix.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{root: newTrieNode(), nodes: 1}
}

// Insert adds sentence to the set of every node on its path, creating nodes as needed.
// It returns false when the sentence was already present.
func (t *PrefixIndex) Insert(sentence string) bool {
	current := t.root
	for _, char := range sentence {
		next, ok := current.children[char]
		if !ok {
			next = newTrieNode()
			current.children[char] = next
			t.nodes++
		}
		current = next
		current.sentences[sentence] = struct{}{}
	}

	if current.terminal {
		return false
	}
	current.terminal = true
	t.count++
	return true
}

// Resolve walks prefix from the root and returns the node reached,
// or nil as soon as a required child is missing.
func (t *PrefixIndex) Resolve(prefix string) *TrieNode {
	current := t.root
	for _, char := range prefix {
		next, ok := current.children[char]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Len returns the number of distinct sentences inserted.
func (t *PrefixIndex) Len() int {
	return t.count
}

// Nodes returns the number of allocated nodes, root included.
func (t *PrefixIndex) Nodes() int {
	return t.nodes
}
