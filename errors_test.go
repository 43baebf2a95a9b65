package reqinfo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFieldError(t *testing.T) {
	assert := assert.New(t)
	var err error = &MissingFieldError{Key: KeyRequestURI}
	assert.Contains(err.Error(), KeyRequestURI)
	assert.True(errors.Is(err, ErrMissingField))

	wrapped := fmt.Errorf("resolving route: %w", err)
	assert.True(errors.Is(wrapped, ErrMissingField))

	var missing *MissingFieldError
	if assert.True(errors.As(wrapped, &missing)) {
		assert.Equal(KeyRequestURI, missing.Key)
	}

	assert.False(errors.Is(errors.New("other"), ErrMissingField))
}
