package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewParsingError("bad document", ErrInvalidJSON)
	assert.Equal(t, "parsing: bad document: invalid JSON format", err.Error())

	bare := &AppError{Type: ErrorTypeInput, Message: "no file"}
	assert.Equal(t, "input: no file", bare.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewInputError("missing", ErrFileNotFound)
	assert.ErrorIs(t, err, ErrFileNotFound)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.ErrorIs(t, wrapped, ErrFileNotFound)
}

func TestAppError_Is(t *testing.T) {
	parseErr := NewParsingError("a", nil)
	otherParseErr := NewParsingError("b", nil)
	inputErr := NewInputError("c", nil)

	assert.True(t, errors.Is(parseErr, otherParseErr), "same type matches")
	assert.False(t, errors.Is(parseErr, inputErr), "different type does not")
}

func TestIsParseFailure(t *testing.T) {
	assert.True(t, IsParseFailure(NewParsingError("bad", ErrInvalidJSON)))
	assert.False(t, IsParseFailure(NewParsingError("empty", ErrEmptyInput)))
	assert.False(t, IsParseFailure(NewInputError("none", ErrNoInput)))
	assert.False(t, IsParseFailure(errors.New("unrelated")))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "app parsing error",
			err:  NewParsingError("document is broken", ErrInvalidJSON),
			want: "JSON parsing error: document is broken",
		},
		{
			name: "app input error",
			err:  NewInputError("no such file", ErrFileNotFound),
			want: "Input error: no such file",
		},
		{
			name: "app output error",
			err:  NewOutputError("cannot write", nil),
			want: "Output error: cannot write",
		},
		{
			name: "sentinel invalid json",
			err:  ErrInvalidJSON,
			want: "Error: The input contains invalid JSON. Please check your JSON syntax.",
		},
		{
			name: "sentinel empty input",
			err:  ErrEmptyInput,
			want: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name: "sentinel invalid indent",
			err:  ErrInvalidIndent,
			want: "Error: Unsupported indent width. Supported widths are 0 (minified), 2, 4 and 8.",
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserFriendlyError(tt.err))
		})
	}
}
