package faults_test

import (
	"errors"
	"io/fs"
	"testing"

	"photosift/internal/faults"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := fs.ErrPermission
	err := faults.Wrap(faults.ErrItem, "deduplicating", "hash file", "unreadable file", cause)
	if !errors.Is(err, faults.ErrItem) {
		t.Fatalf("expected wrapped error to match ErrItem: %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected wrapped error to keep cause: %v", err)
	}
}

func TestWrapDefaultsToItemMarker(t *testing.T) {
	err := faults.Wrap(nil, "organizing", "move file", "", nil)
	if !errors.Is(err, faults.ErrItem) {
		t.Fatalf("expected nil marker to default to ErrItem: %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"input", faults.Wrap(faults.ErrInput, "scanning", "stat root", "missing root", nil), true},
		{"invariant", faults.Wrap(faults.ErrInvariant, "organizing", "plan destination", "collision loop exhausted", nil), true},
		{"item", faults.Wrap(faults.ErrItem, "organizing", "move file", "", fs.ErrPermission), false},
		{"plain", errors.New("unclassified"), false},
	}
	for _, tc := range cases {
		if got := faults.IsFatal(tc.err); got != tc.want {
			t.Fatalf("%s: IsFatal = %v, want %v", tc.name, got, tc.want)
		}
	}
}
