// Package sound plays the start and end cues through the system speaker.
package sound

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"pomodoro/internal/core/session"
)

const speakerRate = beep.SampleRate(44100)

// ErrNoSoundFile means the cue has no playable file in the sounds directory.
var ErrNoSoundFile = errors.New("sound file not found")

var cueFiles = map[session.Sound]string{
	session.SoundStart: "break-start-bip",
	session.SoundEnd:   "break-end-bip",
}

// Player plays cues from a directory of mp3 or wav files and rings the
// terminal bell when a cue cannot be played.
type Player struct {
	dir  string
	bell io.Writer

	initOnce sync.Once
	initErr  error
}

// NewPlayer creates a player reading cues from dir.
func NewPlayer(dir string) *Player {
	return &Player{dir: dir, bell: os.Stderr}
}

// Play starts the cue in the background. Errors are logged, never returned.
func (player *Player) Play(cue session.Sound) {
	go func() {
		if err := player.play(cue); err != nil {
			slog.Warn("play sound failed, ringing bell", "sound", cue, "error", err)
			player.ringBell()
		}
	}()
}

func (player *Player) play(cue session.Sound) error {
	path, err := player.resolve(cue)
	if err != nil {
		return err
	}

	streamer, format, err := decode(path)
	if err != nil {
		return err
	}
	defer streamer.Close()

	player.initOnce.Do(func() {
		player.initErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	if player.initErr != nil {
		return fmt.Errorf("init speaker: %w", player.initErr)
	}

	var source beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		source = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(source, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

func (player *Player) resolve(cue session.Sound) (string, error) {
	base, ok := cueFiles[cue]
	if !ok {
		return "", fmt.Errorf("%w: unknown cue %q", ErrNoSoundFile, cue)
	}
	if player.dir == "" {
		return "", fmt.Errorf("%w: no sounds directory", ErrNoSoundFile)
	}
	for _, ext := range []string{".mp3", ".wav"} {
		path := filepath.Join(player.dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNoSoundFile, base, player.dir)
}

func (player *Player) ringBell() {
	if player.bell == nil {
		return
	}
	_, _ = io.WriteString(player.bell, "\a")
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if filepath.Ext(path) == ".wav" {
		streamer, format, err = wav.Decode(file)
	} else {
		streamer, format, err = mp3.Decode(file)
	}
	if err != nil {
		_ = file.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, format, nil
}
