package ids

import (
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func TestNewLeaves(t *testing.T) {
	leaves := NewLeaves(32)
	if len(leaves) != 32 {
		t.Fatalf("len(NewLeaves(32)) = %d, want 32", len(leaves))
	}

	seen := make(map[mosaic.Leaf]bool)
	for _, l := range leaves {
		if seen[l] {
			t.Errorf("duplicate key %s", l)
		}
		seen[l] = true
		if !IsGenerated(l) {
			t.Errorf("IsGenerated(%s) = false", l)
		}
	}

	if got := NewLeaves(0); got != nil {
		t.Errorf("NewLeaves(0) = %v, want nil", got)
	}
}

func TestIsGenerated(t *testing.T) {
	if IsGenerated("editor") {
		t.Error("IsGenerated(editor) = true")
	}
}

func TestNewWorkspace(t *testing.T) {
	id := NewWorkspace()
	if !strings.HasPrefix(id, "ws-") || len(id) != 11 {
		t.Errorf("NewWorkspace() = %q", id)
	}
}
