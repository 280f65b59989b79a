// Package stack provides a generic last-in-first-out container.
package stack

import "errors"

// ErrEmptyStack is returned by Pop and Peek when the stack holds no elements.
var ErrEmptyStack = errors.New("cannot pop or peek an empty stack")

// Stack is a LIFO container of elements of type T. The zero value is an empty stack ready for
// use. A Stack is not safe for concurrent use; callers must serialize access.
type Stack[T any] struct {
	items []T
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top element. It returns ErrEmptyStack if there is none.
func (s *Stack[T]) Pop() (T, error) {
	top, err := s.Peek()
	if err != nil {
		return top, err
	}
	var zero T
	last := len(s.items) - 1
	// Release the reference so the stack no longer owns the popped element.
	s.items[last] = zero
	s.items = s.items[:last]
	return top, nil
}

// Peek returns the top element without removing it. It returns ErrEmptyStack if there is none.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// IsEmpty returns true if the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.Size() == 0
}

// Clear removes every element from the stack.
func (s *Stack[T]) Clear() {
	s.items = nil
}

// Values returns a copy of the elements ordered from bottom to top.
func (s *Stack[T]) Values() []T {
	result := make([]T, len(s.items))
	copy(result, s.items)
	return result
}
