//go:build !windows

package stderr

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_CapturesLines(t *testing.T) {
	got := make(chan string, 4)
	require.NoError(t, Start(func(line string) {
		select {
		case got <- line:
		default:
		}
	}))
	defer Stop()

	fmt.Fprintln(os.Stderr, "   ")
	fmt.Fprintln(os.Stderr, "  ALSA lib pcm.c: underrun  ")

	select {
	case line := <-got:
		assert.Equal(t, "ALSA lib pcm.c: underrun", line)
	case <-time.After(2 * time.Second):
		t.Fatal("no line captured")
	}
}

func TestStop_Idempotent(t *testing.T) {
	require.NoError(t, Start(func(string) {}))
	Stop()
	Stop()
	assert.False(t, started)
}
