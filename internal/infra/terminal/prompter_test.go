package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Confirm(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\n"), &out)

	require.NoError(t, p.Confirm(context.Background(), "Press enter to continue"))
	assert.Equal(t, "Press enter to continue ", out.String())
}

func TestLinePrompter_Confirm_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader(""), &out)

	assert.NoError(t, p.Confirm(context.Background(), "Press enter to continue"))
}

func TestLinePrompter_Confirm_Canceled(t *testing.T) {
	// A pipe that is never written to blocks the reader
	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	var out bytes.Buffer
	p := NewLinePrompter(r, &out)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := p.Confirm(ctx, "Press enter to continue")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLinePrompter_Confirm_AlreadyCanceled(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\n"), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Confirm(ctx, "Press enter to continue"), context.Canceled)
	assert.Empty(t, out.String())
}
