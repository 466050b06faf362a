package breaker_test

import (
	"errors"
	"hotel/shared/breaker"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := breaker.New("test")
	failing := func() (any, error) { return nil, errors.New("sink down") }

	for range 3 {
		_, err := cb.Execute(failing)
		assert.EqualError(t, err, "sink down")
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (any, error) { return nil, nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
