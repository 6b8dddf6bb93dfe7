package component

// ItemQueueCapacity is the number of items a player can carry.
const ItemQueueCapacity = 3

// ItemQueue is a fixed-capacity FIFO. Pushing onto a full queue evicts the
// oldest entry.
type ItemQueue struct {
	items [ItemQueueCapacity]ItemKind
	head  int
	size  int
}

// Push appends kind and returns the evicted item, if any.
func (q *ItemQueue) Push(kind ItemKind) (evicted ItemKind, ok bool) {
	if q.size == ItemQueueCapacity {
		evicted = q.items[q.head]
		q.items[q.head] = kind
		q.head = (q.head + 1) % ItemQueueCapacity
		return evicted, true
	}
	q.items[(q.head+q.size)%ItemQueueCapacity] = kind
	q.size++
	return 0, false
}

// Pop removes and returns the oldest item.
func (q *ItemQueue) Pop() (ItemKind, bool) {
	if q.size == 0 {
		return 0, false
	}
	kind := q.items[q.head]
	q.head = (q.head + 1) % ItemQueueCapacity
	q.size--
	return kind, true
}

// Peek returns the oldest item without removing it.
func (q *ItemQueue) Peek() (ItemKind, bool) {
	if q.size == 0 {
		return 0, false
	}
	return q.items[q.head], true
}

func (q *ItemQueue) Len() int { return q.size }

// Items returns the queued items, oldest first.
func (q *ItemQueue) Items() []ItemKind {
	out := make([]ItemKind, 0, q.size)
	for i := 0; i < q.size; i++ {
		out = append(out, q.items[(q.head+i)%ItemQueueCapacity])
	}
	return out
}

func (q *ItemQueue) Clear() {
	*q = ItemQueue{}
}
