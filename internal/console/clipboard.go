package console

import "sync"

// Clipboard holds the value actions pass to each other, such as the file
// content read by load and written by export.
type Clipboard struct {
	mu    sync.Mutex
	value any
	set   bool
}

// Set replaces the clipboard value.
func (c *Clipboard) Set(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.set = true
}

// Get returns the clipboard value and whether one is set.
func (c *Clipboard) Get() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.set
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.set = false
}
