//go:build !windows

// Package stderr captures output that C audio libraries (ALSA through the
// speaker backend) write straight to file descriptor 2, which would
// otherwise corrupt the editor's screen.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start redirects fd 2 into a pipe and hands every non-empty captured line
// to sink from a background goroutine. Must be called before the audio
// backend is initialized. On error nothing is redirected.
func Start(sink func(line string)) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				sink(line)
			}
		}
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	if !started {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(origStderr, []byte(msg))
}

// Stop restores the original stderr.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()
	started = false
}
