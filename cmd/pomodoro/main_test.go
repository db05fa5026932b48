package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid time specified.", errorMessage(fmt.Errorf("%w: %q", domain.ErrInvalidTime, "abc")))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
}
