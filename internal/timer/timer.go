// Package timer provides a coarse clock for setting I/O deadlines. Deadlines are measured in
// seconds, so reading a cached value instead of calling time.Now() on every read is precise
// enough, yet way cheaper.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Resolution is how often the cached time is refreshed.
const Resolution = 500 * time.Millisecond

var (
	millis = new(atomic.Int64)
	start  sync.Once
)

// Now returns the cached time. The first call starts the refreshing goroutine.
func Now() time.Time {
	start.Do(run)
	m := millis.Load()

	return time.UnixMilli(m)
}

// Deadline returns the moment d from now.
func Deadline(d time.Duration) time.Time {
	return Now().Add(d)
}

func run() {
	millis.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			millis.Store(time.Now().UnixMilli())
		}
	}()
}
