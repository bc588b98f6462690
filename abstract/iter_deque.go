package abstract

// iterDeque is a double-ended queue of frames, which captures iteration
// state as an Iterator unfolds a tree from both ends. It is a ring buffer
// whose capacity is always a power of two.
type iterDeque[E any] struct {
	buf  []iterFrame[E]
	head int // index of the front element
	n    int
}

// iterDequeDepth is the initial capacity of the ring buffer. A walk holds
// about two frames per level of the tree on each side.
const iterDequeDepth = 16

// iterFrame is either a subtree which has not yet been split or an element
// which has already been exposed.
type iterFrame[E any] struct {
	id    nodeID
	elem  E
	ready bool // elem is set and id is not
}

func subtreeFrame[E any](id nodeID) iterFrame[E] {
	return iterFrame[E]{id: id}
}

func elemFrame[E any](e E) iterFrame[E] {
	return iterFrame[E]{elem: e, ready: true}
}

func (d *iterDeque[E]) grow() {
	c := 2 * len(d.buf)
	if c == 0 {
		c = iterDequeDepth
	}
	buf := make([]iterFrame[E], c)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)&(len(d.buf)-1)]
	}
	d.buf = buf
	d.head = 0
}

func (d *iterDeque[E]) pushBack(f iterFrame[E]) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)&(len(d.buf)-1)] = f
	d.n++
}

func (d *iterDeque[E]) pushFront(f iterFrame[E]) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head - 1) & (len(d.buf) - 1)
	d.buf[d.head] = f
	d.n++
}

func (d *iterDeque[E]) popBack() iterFrame[E] {
	d.n--
	i := (d.head + d.n) & (len(d.buf) - 1)
	f := d.buf[i]
	d.buf[i] = iterFrame[E]{}
	return f
}

func (d *iterDeque[E]) popFront() iterFrame[E] {
	f := d.buf[d.head]
	d.buf[d.head] = iterFrame[E]{}
	d.head = (d.head + 1) & (len(d.buf) - 1)
	d.n--
	return f
}

func (d *iterDeque[E]) len() int {
	return d.n
}

func (d *iterDeque[E]) reset() {
	clear(d.buf)
	d.head = 0
	d.n = 0
}
