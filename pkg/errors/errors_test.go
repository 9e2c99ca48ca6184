package errors_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWardenError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.WardenError
		expected string
	}{
		{
			name:     "plain_error",
			err:      errors.New(errors.ErrUserNotFound, "no such user"),
			expected: "[USER_NOT_FOUND] no such user",
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(fmt.Errorf("boom"), errors.ErrDocumentRead, "reading settings"),
			expected: "[DOCUMENT_READ] reading settings: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
}

func TestCode(t *testing.T) {
	err := errors.Newf(errors.ErrLinkCreate, "cannot link %s", "book.json")
	assert.Equal(t, errors.ErrLinkCreate, errors.Code(err))
	assert.Equal(t, errors.ErrUnknown, errors.Code(fmt.Errorf("plain")))
}

func TestIs_MatchesOnCode(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("inner"), errors.ErrSnapshotCopy, "copy failed")
	require.ErrorIs(t, err, errors.New(errors.ErrSnapshotCopy, "anything"))
	require.NotErrorIs(t, err, errors.New(errors.ErrIndexWrite, "anything"))
}
