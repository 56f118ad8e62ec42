package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("manifest.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "manifest.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "manifest.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("settings.toml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: settings.toml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("gallery[2].url", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "gallery[2].url", validationErr.Field)
	require.Contains(t, err.Error(), "is required")
}

func TestContractErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewContractError("lightbox.open", "index %d outside [0,%d)", 7, 6)

	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	require.Equal(t, "lightbox.open", contractErr.Op)
	require.True(t, stdErrors.Is(err, ErrContract))
	require.True(t, stdErrors.Is(fmt.Errorf("wrapped: %w", err), ErrContract))
	require.Equal(t, "contract violation in lightbox.open: index 7 outside [0,6)", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var contractErr *ContractError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, contractErr.Error())
	require.Nil(t, parseErr.Unwrap())
}
