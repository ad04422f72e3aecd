package errors

import (
	"errors"
	"io/fs"
	"net/http"

	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// Classify maps err onto a structured [*Error].
//
// Errors that already carry a code are returned unchanged. Layout errors
// from package mosaic and decode errors from package io get their matching
// code; missing files become FILE_NOT_FOUND; anything else is
// INTERNAL_ERROR. Classify returns nil for a nil err.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded
	}

	var (
		decode   *pkgio.DecodeError
		notFound *mosaic.PathNotFoundError
		branch   *mosaic.InvalidBranchError
	)
	switch {
	case errors.As(err, &decode):
		return Wrap(ErrCodeInvalidFormat, err, "invalid document")
	case errors.Is(err, mosaic.ErrEmptyRoot):
		return Wrap(ErrCodeEmptyRoot, err, "layout is empty")
	case errors.As(err, &notFound):
		return Wrap(ErrCodePathNotFound, err, "path %s does not exist", notFound.Path)
	case errors.As(err, &branch):
		return Wrap(ErrCodeInvalidBranch, err, "invalid branch %q", string(branch.Branch))
	case errors.Is(err, mosaic.ErrRootPath):
		return Wrap(ErrCodeInvalidPath, err, "operation needs a non-root path")
	case errors.Is(err, mosaic.ErrInvalidDrop):
		return Wrap(ErrCodeInvalidDrop, err, "cannot drop a node onto itself or into its own subtree")
	case errors.Is(err, fs.ErrNotExist):
		return Wrap(ErrCodeFileNotFound, err, "file not found")
	}
	return Wrap(ErrCodeInternal, err, "unexpected error")
}

// HTTPStatus returns the response status for code.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidPath, ErrCodeInvalidFormat,
		ErrCodeInvalidPercentage, ErrCodeInvalidBranch:
		return http.StatusBadRequest
	case ErrCodePathNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeEmptyRoot:
		return http.StatusConflict
	case ErrCodeInvalidDrop:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
