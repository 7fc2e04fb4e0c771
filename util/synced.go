package util

import "sync/atomic"

// Generation is a monotonically increasing ticket counter. Each new request
// takes a ticket; work finished under an older ticket is stale.
type Generation struct {
	value atomic.Uint64
}

// Next issues a new ticket and makes it the current one.
func (g *Generation) Next() uint64 {
	return g.value.Add(1)
}

// IsCurrent reports whether ticket is still the latest.
func (g *Generation) IsCurrent(ticket uint64) bool {
	return g.value.Load() == ticket
}

// SafeFlag is safe to use concurrently.
type SafeFlag struct {
	value int32
}

// NewSafeBool creates a new SafeBool.
func NewSafeBool() *SafeFlag {
	return &SafeFlag{}
}

// Set sets the value of the SafeBool and returns the new value.
func (sb *SafeFlag) Set(newValue bool) bool {
	var intValue int32
	if newValue {
		intValue = 1
	}
	atomic.StoreInt32(&sb.value, intValue)
	return newValue
}

// Value returns the current value of the SafeBool.
func (sb *SafeFlag) Value() bool {
	return atomic.LoadInt32(&sb.value) != 0
}
