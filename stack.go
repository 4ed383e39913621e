package lox

import "fmt"

// Stack is a LIFO whose elements stay addressable by index, bottom first.
// The resolver keeps its scope frames on one.
type Stack[T any] struct {
	elem []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(s.elem) {
		var zero T
		return zero, false
	}
	return s.elem[index], true
}

func (s *Stack[T]) Size() int {
	return len(s.elem)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.elem) == 0
}

// Top panics on an empty stack.
func (s *Stack[T]) Top() T {
	return s.elem[len(s.elem)-1]
}

func (s *Stack[T]) Push(value T) {
	s.elem = append(s.elem, value)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.elem) == 0 {
		return zero, false
	}
	value := s.elem[len(s.elem)-1]
	s.elem[len(s.elem)-1] = zero
	s.elem = s.elem[:len(s.elem)-1]
	return value, true
}

func (s Stack[T]) String() string {
	return fmt.Sprintf("stack <size,%d> <elems,%v>", s.Size(), s.elem)
}
