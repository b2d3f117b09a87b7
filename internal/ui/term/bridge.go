package term

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/session"
)

// ErrClosed is returned by Confirm once the bridge stopped.
var ErrClosed = errors.New("terminal closed")

// sender is the subset of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// Bridge adapts the session collaborators to a bubbletea program. Render and
// Notify never block: the clock calls them with its lock held, so delivery
// happens on the bridge's own goroutine. Rendering keeps only the latest
// status.
type Bridge struct {
	mu     sync.Mutex
	latest *statusMsg
	wake   chan struct{}
	queue  chan tea.Msg
	done   chan struct{}
	once   sync.Once
}

// NewBridge creates an unattached bridge.
func NewBridge() *Bridge {
	return &Bridge{
		wake:  make(chan struct{}, 1),
		queue: make(chan tea.Msg, 32),
		done:  make(chan struct{}),
	}
}

// Render records the latest status text.
func (bridge *Bridge) Render(text string, emphasis session.Emphasis) {
	bridge.mu.Lock()
	bridge.latest = &statusMsg{Text: text, Emphasis: emphasis}
	bridge.mu.Unlock()

	select {
	case bridge.wake <- struct{}{}:
	default:
	}
}

// Notify queues an announcement; it is dropped if the queue is full.
func (bridge *Bridge) Notify(message string, duration time.Duration) {
	select {
	case bridge.queue <- noticeMsg{Text: message, Duration: duration}:
	default:
		slog.Warn("notification dropped", "message", message)
	}
}

// Confirm shows a y/n prompt and waits for the answer.
func (bridge *Bridge) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)
	select {
	case bridge.queue <- confirmMsg{Prompt: prompt, Reply: reply}:
	case <-ctx.Done():
		return false, ctx.Err()
	case <-bridge.done:
		return false, ErrClosed
	}

	select {
	case answer := <-reply:
		return answer, nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-bridge.done:
		return false, ErrClosed
	}
}

// Pump forwards queued messages to program until ctx is done or Close.
func (bridge *Bridge) Pump(ctx context.Context, program sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-bridge.done:
			return
		case <-bridge.wake:
			bridge.mu.Lock()
			latest := bridge.latest
			bridge.latest = nil
			bridge.mu.Unlock()
			if latest != nil {
				program.Send(*latest)
			}
		case msg := <-bridge.queue:
			program.Send(msg)
		}
	}
}

// Close stops the pump and fails pending confirmations.
func (bridge *Bridge) Close() {
	bridge.once.Do(func() { close(bridge.done) })
}
