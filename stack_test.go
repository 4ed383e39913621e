package lox

import (
	"testing"
)

func TestStack(t *testing.T) {
	s := NewStack[int]()
	if !s.IsEmpty() || s.Size() != 0 {
		t.Fatalf("new stack: size %d", s.Size())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on an empty stack succeeded")
	}

	for i := 1; i <= 3; i++ {
		s.Push(i * 10)
	}
	if s.Size() != 3 || s.Top() != 30 {
		t.Errorf("size %d, top %d", s.Size(), s.Top())
	}
	if v, ok := s.Get(0); !ok || v != 10 {
		t.Errorf("Get(0) = %d, %v; want bottom element", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Error("Get past the top succeeded")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("Get(-1) succeeded")
	}

	for _, want := range []int{30, 20, 10} {
		if v, ok := s.Pop(); !ok || v != want {
			t.Errorf("Pop() = %d, %v; want %d", v, ok, want)
		}
	}
	if !s.IsEmpty() {
		t.Error("stack not empty after popping everything")
	}
}

func TestStackOfScopes(t *testing.T) {
	s := NewStack[scope]()
	s.Push(scope{})
	s.Top()["a"] = false
	s.Push(scope{"b": true})

	if frame, _ := s.Get(0); frame["a"] {
		t.Error("a should still be pending in the outer frame")
	}
	if got := s.String(); got != "stack <size,2> <elems,[map[a:false] map[b:true]]>" {
		t.Errorf("String() = %q", got)
	}
}
