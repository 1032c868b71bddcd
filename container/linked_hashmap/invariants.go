package linked_hashmap

import (
	"github.com/ordered/linkedmap/errors"
)

// checkInvariants walks the whole structure and verifies that the index and
// the chain agree with each other. Linear time; meant for tests.
func (l *LinkedHashmap[K, V]) checkInvariants() error {
	c := &l.chain
	if l.hashMap == nil {
		if c.nodes != nil {
			return errors.New("chain allocated without an index")
		}
		return nil
	}

	if (c.first == nilSlot) != (c.last == nilSlot) {
		return errors.Newf("first %d and last %d disagree on emptiness", c.first, c.last)
	}

	seen := 0
	prev := nilSlot
	for id := c.first; id != nilSlot; id = c.nodes[id].next {
		if seen > len(c.nodes) {
			return errors.New("cycle in chain")
		}
		n := &c.nodes[id]
		if !n.live {
			return errors.Newf("released slot %d is linked", id)
		}
		if n.prev != prev {
			return errors.Newf("slot %d prev is %d, expected %d", id, n.prev, prev)
		}
		indexed, ok := l.hashMap[n.key]
		if !ok {
			return errors.Newf("key %v is linked but not indexed", n.key)
		}
		if indexed != id {
			return errors.Newf("key %v is indexed at slot %d but linked at %d", n.key, indexed, id)
		}
		prev = id
		seen++
	}
	if prev != c.last {
		return errors.Newf("chain ends at %d, last is %d", prev, c.last)
	}
	if seen != len(l.hashMap) {
		return errors.Newf("%d linked entries, %d indexed", seen, len(l.hashMap))
	}
	if seen != c.size {
		return errors.Newf("%d linked entries, size is %d", seen, c.size)
	}

	freed := 0
	for id := c.free; id != nilSlot; id = c.nodes[id].next {
		if freed > len(c.nodes) {
			return errors.New("cycle in free list")
		}
		if c.nodes[id].live {
			return errors.Newf("live slot %d is on the free list", id)
		}
		freed++
	}
	if seen+freed != len(c.nodes) {
		return errors.Newf("%d live and %d free slots, arena holds %d", seen, freed, len(c.nodes))
	}
	return nil
}
