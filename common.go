package main

func New2DArray[T any](width, height int) [][]T {
	arr := make([][]T, width)

	for i := 0; i < width; i++ {
		arr[i] = make([]T, height)
	}

	return arr
}

type Queue[T any] struct {
	Data []T
}

func (q *Queue[T]) Length() int {
	return len(q.Data)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.Data) <= 0
}

func (q *Queue[T]) Enqueue(item T) {
	q.Data = append(q.Data, item)
}

func (q *Queue[T]) Dequeue() T {
	toReturn := q.Data[0]

	for i := 0; i+1 < len(q.Data); i++ {
		q.Data[i] = q.Data[i+1]
	}

	q.Data = q.Data[:len(q.Data)-1]

	return toReturn
}

func (q *Queue[T]) PeekFirst() T {
	return q.Data[0]
}

func (q *Queue[T]) PeekLast() T {
	return q.Data[len(q.Data)-1]
}

func (q *Queue[T]) Clear() {
	q.Data = q.Data[:0]
}
