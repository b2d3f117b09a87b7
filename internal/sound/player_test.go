package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/session"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (buffer *syncBuffer) Write(data []byte) (int, error) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.buf.Write(data)
}

func (buffer *syncBuffer) String() string {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.buf.String()
}

func TestResolvePrefersMP3(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "break-start-bip.wav"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "break-start-bip.mp3"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "break-end-bip.wav"), nil, 0o644))

	player := NewPlayer(dir)
	path, err := player.resolve(session.SoundStart)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "break-start-bip.mp3"), path)

	path, err = player.resolve(session.SoundEnd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "break-end-bip.wav"), path)
}

func TestResolveMissing(t *testing.T) {
	_, err := NewPlayer(t.TempDir()).resolve(session.SoundEnd)
	require.ErrorIs(t, err, ErrNoSoundFile)

	_, err = NewPlayer("").resolve(session.SoundStart)
	require.ErrorIs(t, err, ErrNoSoundFile)

	_, err = NewPlayer(t.TempDir()).resolve(session.Sound("fanfare"))
	require.ErrorIs(t, err, ErrNoSoundFile)
}

func TestPlayUndecodableFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "break-end-bip.wav"), []byte("not a wav"), 0o644))

	err := NewPlayer(dir).play(session.SoundEnd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestPlayFallsBackToBell(t *testing.T) {
	bell := &syncBuffer{}
	player := NewPlayer(t.TempDir())
	player.bell = bell

	player.Play(session.SoundStart)
	require.Eventually(t, func() bool { return bell.String() == "\a" }, time.Second, 5*time.Millisecond)
}
