// Package player provides playback sources for the sync editor: an audio
// player built on beep and a wall clock for sessions without audio.
package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// IsAudioFile reports whether path has an extension Open can play.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == extMP3 || ext == extFLAC
}

// Player plays one audio file and exposes its position, rate and loop flag.
type Player struct {
	file      *os.File
	stream    beep.StreamSeekCloser
	format    beep.Format
	looper    *loopStreamer
	resampler *beep.Resampler
	ctrl      *beep.Ctrl
	baseRatio float64
	rate      float64
	state     State
}

// Open starts playing the audio file at path.
func Open(path string) (*Player, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extFLAC {
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var stream beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		stream, format, err = decodeMP3(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err = skipID3v2(f); err == nil {
			stream, format, err = flac.Decode(f)
		}
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			stream.Close()
			f.Close()
			return nil, err
		}
		speakerInitialized = true
	}

	p := &Player{
		file:      f,
		stream:    stream,
		format:    format,
		looper:    &loopStreamer{s: stream},
		baseRatio: float64(format.SampleRate) / float64(speakerSampleRate),
		rate:      1,
		state:     Playing,
	}
	p.resampler = beep.ResampleRatio(4, p.baseRatio, p.looper)
	p.ctrl = &beep.Ctrl{Streamer: p.resampler}
	speaker.Play(p.ctrl)

	return p, nil
}

// Close stops playback and releases the file.
func (p *Player) Close() {
	if p.state == Stopped {
		return
	}
	speaker.Clear()
	p.stream.Close()
	p.file.Close()
	p.state = Stopped
}

// State returns the playback state.
func (p *Player) State() State { return p.state }

// Toggle pauses or resumes playback.
func (p *Player) Toggle() {
	if p.state == Stopped {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
	if p.ctrl.Paused {
		p.state = Paused
	} else {
		p.state = Playing
	}
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.state != Playing }

// Duration returns the length of the track.
func (p *Player) Duration() time.Duration {
	return p.format.SampleRate.D(p.stream.Len())
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.state == Stopped {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.stream.Position())
}

// SetPosition seeks to pos, clamped to the track.
func (p *Player) SetPosition(pos time.Duration) {
	if p.state == Stopped {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	n := max(0, min(p.format.SampleRate.N(pos), p.stream.Len()))
	_ = p.stream.Seek(n)
}

// PlaybackRate returns the speed factor.
func (p *Player) PlaybackRate() float64 { return p.rate }

// SetPlaybackRate changes the speed factor. Pitch follows the speed.
func (p *Player) SetPlaybackRate(rate float64) {
	if rate <= 0 || p.state == Stopped {
		return
	}
	speaker.Lock()
	p.resampler.SetRatio(p.baseRatio * rate)
	speaker.Unlock()
	p.rate = rate
}

// Loop reports whether playback restarts at the end of the track.
func (p *Player) Loop() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.looper.loop
}

// SetLoop sets whether playback restarts at the end of the track.
func (p *Player) SetLoop(loop bool) {
	speaker.Lock()
	p.looper.loop = loop
	speaker.Unlock()
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
// Some FLAC files have ID3v2 tags prepended, which the FLAC decoder doesn't handle.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n == 0 {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9 (7 bits per byte)
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
