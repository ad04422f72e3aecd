package mosaic

import (
	"errors"
	"testing"
)

func TestPlanDrop(t *testing.T) {
	p := func(bs ...Branch) Path { return Path(bs) }

	tests := []struct {
		name        string
		source      Path
		destination Path
		want        Path
		nested      bool
		err         error
	}{
		{"sibling collapses to root", p(First), p(Second), p(), false, nil},
		{"shifted below collapsed parent", p(First), p(Second, Second), p(Second), false, nil},
		{"deep shift", p(Second, First), p(Second, Second, First), p(Second, First), false, nil},
		{"unrelated subtree", p(First, First), p(Second, First), p(Second, First), false, nil},
		{"shallower destination", p(First, Second, First), p(Second), p(Second), false, nil},
		{"ancestor", p(Second, First), p(Second), p(Second), true, nil},
		{"root ancestor", p(Second, Second), p(), p(), true, nil},
		{"onto itself", p(Second), p(Second), nil, false, ErrInvalidDrop},
		{"into own subtree", p(Second), p(Second, First), nil, false, ErrInvalidDrop},
		{"root source", p(), p(First), nil, false, ErrInvalidDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planDrop(tt.source, tt.destination)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("planDrop() error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("planDrop() error = %v", err)
			}
			if !got.destination.Equal(tt.want) {
				t.Errorf("planDrop() destination = %v, want %v", got.destination, tt.want)
			}
			if got.nested != tt.nested {
				t.Errorf("planDrop() nested = %v, want %v", got.nested, tt.nested)
			}
		})
	}
}
