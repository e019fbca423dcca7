package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func BenchmarkNow(b *testing.B) {
	b.Run("time.Now()", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = time.Now().Add(5 * time.Second)
		}
	})

	b.Run("timer.Now()", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Now().Add(5 * time.Second)
		}
	})
}

func TestNow(t *testing.T) {
	now := time.Now()
	cached := Now()
	require.WithinDuration(t, now, cached, 2*Resolution)

	time.Sleep(2 * Resolution)
	require.True(t, Now().After(cached))
	require.WithinDuration(t, time.Now().Add(time.Minute), Deadline(time.Minute), 2*Resolution)
}
