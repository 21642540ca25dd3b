package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessageFormat(t *testing.T) {
	err := New(CategoryConfig, "unsupported language")
	assert.Equal(t, "config: unsupported language", err.Error())

	wrapped := Wrap(goerrors.New("permission denied"), CategoryFilesystem, "write page")
	assert.Equal(t, "filesystem: write page: permission denied", wrapped.Error())
}

func TestIsCategory_ThroughWrappedChain(t *testing.T) {
	inner := Configf("unsupported language %q", "Java")
	outer := fmt.Errorf("building page: %w", inner)

	assert.True(t, IsCategory(outer, CategoryConfig))
	assert.False(t, IsCategory(outer, CategoryInput))
	assert.False(t, IsCategory(goerrors.New("plain"), CategoryConfig))
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryInput, GetCategory(Inputf("dangling reference")))
	assert.Equal(t, Category(""), GetCategory(goerrors.New("plain")))
}

func TestUnwrap_ExposesCause(t *testing.T) {
	cause := goerrors.New("disk full")
	err := Wrap(cause, CategoryFilesystem, "write page")
	require.ErrorIs(t, err, cause)
}
