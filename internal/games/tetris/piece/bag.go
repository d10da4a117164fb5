package piece

import "math/rand"

// Bag deals shapes with the 7-bag algorithm: every cycle is a uniform
// shuffle of all seven shapes, dealt one at a time.
//
// A Bag cannot be rewound; a new game builds a new one.
type Bag struct {
	rng  *rand.Rand
	pool []Shape
}

// NewBag creates a bag that draws its shuffles from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next returns the next shape, refilling and reshuffling when the current
// cycle is exhausted.
func (b *Bag) Next() Shape {
	if len(b.pool) == 0 {
		b.refill()
	}
	s := b.pool[0]
	b.pool = b.pool[1:]
	return s
}

func (b *Bag) refill() {
	b.pool = Shapes()
	b.rng.Shuffle(len(b.pool), func(i, j int) {
		b.pool[i], b.pool[j] = b.pool[j], b.pool[i]
	})
}

// Queue is a single-slot lookahead over a Bag.
type Queue struct {
	bag  *Bag
	next Shape
}

// NewQueue creates a queue and fills its preview slot from bag.
func NewQueue(bag *Bag) *Queue {
	return &Queue{bag: bag, next: bag.Next()}
}

// PeekNext returns the shape that the next Advance will deal.
func (q *Queue) PeekNext() Shape {
	return q.next
}

// Advance deals the previewed shape and pulls a fresh one into the slot.
func (q *Queue) Advance() Shape {
	s := q.next
	q.next = q.bag.Next()
	return s
}
