package set

import (
	"reflect"
	"testing"
)

func TestSetDedup(t *testing.T) {
	s := New("all-pairs", "single-suit clean", "all-pairs")
	if s.Len() != 2 {
		t.Fatalf("expect: 2, got: %d", s.Len())
	}

	if !reflect.DeepEqual(s.Values(), []string{"all-pairs", "single-suit clean"}) {
		t.Fatalf("unexpected values: %v", s.Values())
	}

	if s.Add("all-pairs") {
		t.Fail()
	}
}

func TestSetRemove(t *testing.T) {
	s := New("a", "b", "c")
	s.Remove("b")
	s.Remove("x")

	if s.Contains("b") {
		t.Fail()
	}
	if !reflect.DeepEqual(s.Values(), []string{"a", "c"}) {
		t.Fatalf("unexpected values: %v", s.Values())
	}
}

func TestValuesIsCopy(t *testing.T) {
	s := New("a")
	vals := s.Values()
	vals[0] = "z"
	if !s.Contains("a") || s.Values()[0] != "a" {
		t.Fail()
	}
}
