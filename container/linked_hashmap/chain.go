package linked_hashmap

// slotID addresses a node in the chain arena. nilSlot marks both ends of
// the chain.
type slotID int32

const nilSlot slotID = -1

// A node of the ordering chain. Links are slot ids rather than pointers, so
// rewriting a neighbor's link is a plain slice write through the arena.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  slotID
	next  slotID

	// Bumped every time the slot is released. Cursors compare it to detect
	// that the slot they are parked on no longer holds the same entry.
	gen uint32

	live bool
}

// chain is the arena backed doubly linked list establishing insertion
// order. Released slots are threaded through their next link onto a free
// list and reused by later inserts.
type chain[K comparable, V any] struct {
	nodes []node[K, V]
	first slotID
	last  slotID
	free  slotID
	size  int

	// Bumped whenever a live slot is relinked at a new position. Cursors
	// compare it to detect that the order ahead of them was rearranged.
	moves uint64
}

func (c *chain[K, V]) init(sizeEst int) {
	if sizeEst < 0 {
		sizeEst = 0
	}
	c.nodes = make([]node[K, V], 0, sizeEst)
	c.first = nilSlot
	c.last = nilSlot
	c.free = nilSlot
	c.size = 0
}

func (c *chain[K, V]) at(id slotID) *node[K, V] {
	return &c.nodes[id]
}

// alloc returns a detached live slot holding key and value.
func (c *chain[K, V]) alloc(key K, value V) slotID {
	var id slotID
	if c.free != nilSlot {
		id = c.free
		c.free = c.nodes[id].next
	} else {
		c.nodes = append(c.nodes, node[K, V]{})
		id = slotID(len(c.nodes) - 1)
	}

	n := &c.nodes[id]
	n.key = key
	n.value = value
	n.prev = nilSlot
	n.next = nilSlot
	n.live = true
	c.size++
	return id
}

// release returns a detached slot to the free list. The payload is zeroed
// so the arena does not pin values that were removed from the map.
func (c *chain[K, V]) release(id slotID) {
	n := &c.nodes[id]
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	n.prev = nilSlot
	n.next = c.free
	n.gen++
	n.live = false
	c.free = id
	c.size--
}

// linkBack appends a detached slot after the current last node.
func (c *chain[K, V]) linkBack(id slotID) {
	n := &c.nodes[id]
	n.prev = c.last
	n.next = nilSlot
	if c.last == nilSlot {
		c.first = id
	} else {
		c.nodes[c.last].next = id
	}
	c.last = id
}

// linkFront prepends a detached slot before the current first node.
func (c *chain[K, V]) linkFront(id slotID) {
	n := &c.nodes[id]
	n.prev = nilSlot
	n.next = c.first
	if c.first == nilSlot {
		c.last = id
	} else {
		c.nodes[c.first].prev = id
	}
	c.first = id
}

// unlink splices a live slot out of the chain. Its own links are left
// pointing at the former neighbors; callers either release or relink it.
func (c *chain[K, V]) unlink(id slotID) {
	n := &c.nodes[id]
	if n.prev == nilSlot {
		c.first = n.next
	} else {
		c.nodes[n.prev].next = n.next
	}
	if n.next == nilSlot {
		c.last = n.prev
	} else {
		c.nodes[n.next].prev = n.prev
	}
}

// moveFront relinks a live slot as the first node.
func (c *chain[K, V]) moveFront(id slotID) {
	if c.first == id {
		return
	}
	c.unlink(id)
	c.linkFront(id)
	c.moves++
}

// moveBack relinks a live slot as the last node.
func (c *chain[K, V]) moveBack(id slotID) {
	if c.last == id {
		return
	}
	c.unlink(id)
	c.linkBack(id)
	c.moves++
}

// reset drops every slot. Generations of existing slots are bumped so
// outstanding cursors observe the invalidation.
func (c *chain[K, V]) reset() {
	for i := range c.nodes {
		if c.nodes[i].live {
			c.release(slotID(i))
		}
	}
	c.first = nilSlot
	c.last = nilSlot
}
