package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func sampleLayout() mosaic.Node {
	return mosaic.Parent{Direction: mosaic.Row, First: mosaic.Leaf("a"), Second: mosaic.Leaf("b")}
}

func TestClassifiedLayoutErrors(t *testing.T) {
	tree := sampleLayout()

	_, notFound := mosaic.ResolveStrict(tree, mosaic.Path{mosaic.First, mosaic.Second})
	_, badBranch := mosaic.ParsePath("first.third")
	_, rootRemove := mosaic.RemoveUpdate(tree, mosaic.Path{})
	_, selfDrop := mosaic.DragToUpdates(tree, mosaic.Path{mosaic.First}, mosaic.Path{mosaic.First}, mosaic.Left)
	_, emptyApply := mosaic.ApplyUpdates(nil, []mosaic.Update{
		{Path: mosaic.Path{mosaic.First}, Spec: mosaic.Replace{Node: mosaic.Leaf("x")}},
	})

	tests := []struct {
		name    string
		err     error
		code    Code
		message string
	}{
		{"missing path", notFound, ErrCodePathNotFound, "path first.second does not exist"},
		{"unknown branch", badBranch, ErrCodeInvalidBranch, `invalid branch "third"`},
		{"remove root", rootRemove, ErrCodeInvalidPath, "operation needs a non-root path"},
		{"drop onto itself", selfDrop, ErrCodeInvalidDrop, "cannot drop a node onto itself or into its own subtree"},
		{"apply to empty layout", emptyApply, ErrCodeEmptyRoot, "layout is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("operation unexpectedly succeeded")
			}
			coded := Classify(tt.err)

			if !Is(coded, tt.code) {
				t.Errorf("Is(%v) = false for %v", tt.code, coded)
			}
			if Is(coded, ErrCodeInternal) {
				t.Error("layout errors should not classify as INTERNAL_ERROR")
			}
			if got := GetCode(coded); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
			if got := UserMessage(coded); got != tt.message {
				t.Errorf("UserMessage() = %q, want %q", got, tt.message)
			}
			want := fmt.Sprintf("%s: %s: %v", tt.code, tt.message, tt.err)
			if coded.Error() != want {
				t.Errorf("Error() = %q, want %q", coded.Error(), want)
			}
			if !errors.Is(coded, tt.err) {
				t.Error("classified error should unwrap to the layout error")
			}
		})
	}
}

func TestClassifyKeepsTypedCause(t *testing.T) {
	_, err := mosaic.ResolveStrict(sampleLayout(), mosaic.Path{mosaic.Second, mosaic.First})
	coded := Classify(err)

	var nf *mosaic.PathNotFoundError
	if !errors.As(coded, &nf) {
		t.Fatal("errors.As should reach *PathNotFoundError through the classified error")
	}
	if nf.Path.String() != "second.first" {
		t.Errorf("Path = %v, want second.first", nf.Path)
	}
}

func TestWrapOuterCodeWins(t *testing.T) {
	_, err := mosaic.ResolveStrict(sampleLayout(), mosaic.Path{mosaic.First, mosaic.First})
	inner := Classify(err)
	outer := Wrap(ErrCodeInvalidInput, inner, "request path rejected")

	if !Is(outer, ErrCodeInvalidInput) {
		t.Error("Is(outer, INVALID_INPUT) = false")
	}
	if Is(outer, ErrCodePathNotFound) {
		t.Error("Is should report the outermost code only")
	}
	if GetCode(outer) != ErrCodeInvalidInput {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), ErrCodeInvalidInput)
	}
	if UserMessage(outer) != "request path rejected" {
		t.Errorf("UserMessage() = %q", UserMessage(outer))
	}
	if Classify(outer) != outer {
		t.Error("Classify should return an already coded error unchanged")
	}
	if errors.Unwrap(outer) != inner {
		t.Error("Unwrap() should return the classified cause")
	}
	var nf *mosaic.PathNotFoundError
	if !errors.As(outer, &nf) {
		t.Error("errors.As should reach the layout error through both wrappers")
	}
}

func TestNewValidationError(t *testing.T) {
	err := New(ErrCodeInvalidPercentage, "percentage %v outside [0, 100]", 120)

	if err.Error() != "INVALID_PERCENTAGE: percentage 120 outside [0, 100]" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("New should not carry a cause")
	}
	if got := HTTPStatus(GetCode(err)); got != 400 {
		t.Errorf("HTTPStatus() = %d, want 400", got)
	}
}

func TestUncodedErrors(t *testing.T) {
	plain := fmt.Errorf("watch: %w", mosaic.ErrRootPath)

	if GetCode(plain) != "" {
		t.Errorf("GetCode(plain) = %q, want empty", GetCode(plain))
	}
	if Is(plain, ErrCodeInvalidPath) {
		t.Error("an unclassified error carries no code")
	}
	if UserMessage(plain) != plain.Error() {
		t.Errorf("UserMessage(plain) = %q", UserMessage(plain))
	}
	if GetCode(nil) != "" || Is(nil, ErrCodeInternal) {
		t.Error("nil error should carry no code")
	}
}
