package skeleton

// rbt is a red-black tree whose nodes are also threaded in order through
// previous/next. It backs both the event queue and the split registry.
type rbt[T any] struct {
	root *rbtNode[T]
	cmp  func(a, b T) int
	size int
}

type rbtNode[T any] struct {
	value    T
	left     *rbtNode[T]
	right    *rbtNode[T]
	parent   *rbtNode[T]
	previous *rbtNode[T]
	next     *rbtNode[T]
	red      bool
}

func newRBT[T any](cmp func(a, b T) int) *rbt[T] {
	return &rbt[T]{cmp: cmp}
}

func (t *rbt[T]) len() int { return t.size }

// insert places v after every value that does not compare greater.
func (t *rbt[T]) insert(v T) *rbtNode[T] {
	var after *rbtNode[T]
	for node := t.root; node != nil; {
		if t.cmp(v, node.value) < 0 {
			node = node.left
		} else {
			after = node
			node = node.right
		}
	}
	return t.insertSuccessor(after, v)
}

// insertSuccessor links v right after node, or first when node is nil.
func (t *rbt[T]) insertSuccessor(node *rbtNode[T], v T) *rbtNode[T] {
	successor := &rbtNode[T]{value: v}
	t.size++

	var parent *rbtNode[T]
	if node != nil {
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			node = t.getFirst(node.right)
			node.left = successor
		} else {
			node.right = successor
		}
		parent = node
	} else if t.root != nil {
		node = t.getFirst(t.root)
		successor.next = node
		node.previous = successor
		node.left = successor
		parent = node
	} else {
		t.root = successor
	}
	successor.parent = parent
	successor.red = true

	var grandpa, uncle *rbtNode[T]
	node = successor
	for parent != nil && parent.red {
		grandpa = parent.parent
		if parent == grandpa.left {
			uncle = grandpa.right
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle = grandpa.left
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
	return successor
}

func (t *rbt[T]) removeNode(node *rbtNode[T]) {
	t.size--
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	}
	node.next = nil
	node.previous = nil

	parent := node.parent
	left := node.left
	right := node.right
	var next *rbtNode[T]
	if left == nil {
		next = right
	} else if right == nil {
		next = left
	} else {
		next = t.getFirst(right)
	}
	if parent != nil {
		if parent.left == node {
			parent.left = next
		} else {
			parent.right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != nil && right != nil {
		isRed = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		isRed = node.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}
	if isRed {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}

	var sibling *rbtNode[T]
	for node != t.root {
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if (sibling.left != nil && sibling.left.red) || (sibling.right != nil && sibling.right.red) {
				if sibling.right == nil || !sibling.right.red {
					sibling.left.red = false
					sibling.red = true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red = parent.red
				parent.red = false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if (sibling.left != nil && sibling.left.red) || (sibling.right != nil && sibling.right.red) {
				if sibling.left == nil || !sibling.left.red {
					sibling.right.red = false
					sibling.red = true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red = parent.red
				parent.red = false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func (t *rbt[T]) rotateLeft(p *rbtNode[T]) {
	q := p.right
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *rbt[T]) rotateRight(p *rbtNode[T]) {
	q := p.left
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

func (t *rbt[T]) getFirst(node *rbtNode[T]) *rbtNode[T] {
	for node.left != nil {
		node = node.left
	}
	return node
}

// first returns the smallest node, or nil for an empty tree.
func (t *rbt[T]) first() *rbtNode[T] {
	if t.root == nil {
		return nil
	}
	return t.getFirst(t.root)
}

// popFirst removes and returns the smallest value.
func (t *rbt[T]) popFirst() (T, bool) {
	node := t.first()
	if node == nil {
		var zero T
		return zero, false
	}
	t.removeNode(node)
	return node.value, true
}

// floor returns the greatest node not greater than v.
func (t *rbt[T]) floor(v T) *rbtNode[T] {
	var found *rbtNode[T]
	for node := t.root; node != nil; {
		if t.cmp(node.value, v) <= 0 {
			found = node
			node = node.right
		} else {
			node = node.left
		}
	}
	return found
}

// higher returns the smallest node strictly greater than v.
func (t *rbt[T]) higher(v T) *rbtNode[T] {
	var found *rbtNode[T]
	for node := t.root; node != nil; {
		if t.cmp(node.value, v) > 0 {
			found = node
			node = node.left
		} else {
			node = node.right
		}
	}
	return found
}
