package clipboard

import (
	"context"
	"sync"

	"github.com/atotto/clipboard"
)

// System writes to the operating system clipboard.
type System struct{}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard backend (pbcopy, xclip, wl-copy, ...)
// was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// WriteText replaces the clipboard contents.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

// Memory keeps the last copied text in process. The HTTP service uses it
// since it has no desktop to copy to.
type Memory struct {
	mu   sync.RWMutex
	text string
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteText stores text.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Text returns the last stored text.
func (m *Memory) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}
