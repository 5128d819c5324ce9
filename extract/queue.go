package extract

import "image"

// queue is a FIFO of points backed by a growable ring buffer.
type queue struct {
	buf        []image.Point
	head, size int
}

func (q *queue) len() int { return q.size }

func (q *queue) reset() {
	q.head, q.size = 0, 0
}

func (q *queue) push(p image.Point) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = p
	q.size++
}

func (q *queue) pop() image.Point {
	p := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return p
}

func (q *queue) grow() {
	n := len(q.buf) * 2
	if n == 0 {
		n = 64
	}
	buf := make([]image.Point, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf, q.head = buf, 0
}
