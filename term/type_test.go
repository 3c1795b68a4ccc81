package term

import "testing"

func TestTypeInterning(t *testing.T) {
	s := NewStore()
	u1 := s.Types().Uninterpreted("U")
	u2 := s.Types().Uninterpreted("U")
	if u1 != u2 {
		t.Errorf("two declarations of the same uninterpreted type name did not hash-cons")
	}
	v := s.Types().Uninterpreted("V")
	if u1 == v {
		t.Errorf("distinct type names compared equal")
	}
}

func TestArrowNOpen(t *testing.T) {
	s := NewStore()
	u := s.Types().Uninterpreted("U")
	b := s.Types().Bool()
	arrow := s.Types().ArrowN([]*Type{u, u}, b)
	args, ret := Open(arrow)
	if len(args) != 2 || args[0] != u || args[1] != u {
		t.Errorf("Open did not recover the argument list")
	}
	if ret != b {
		t.Errorf("Open did not recover the return type")
	}
}

func TestArrowNEmptyArgs(t *testing.T) {
	s := NewStore()
	b := s.Types().Bool()
	if s.Types().ArrowN(nil, b) != b {
		t.Errorf("ArrowN with no arguments should return the return type unchanged")
	}
}

func TestBoolAndRatAreSingletons(t *testing.T) {
	s := NewStore()
	if s.Types().Bool() != s.Types().Bool() {
		t.Errorf("Bool() is not stable across calls")
	}
	if s.Types().Rat() == s.Types().Bool() {
		t.Errorf("Rat and Bool must be distinct types")
	}
}
