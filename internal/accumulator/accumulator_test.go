package accumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clock-watch/internal/orgclock"
)

func interval(minutes int64) orgclock.ClosedInterval {
	return orgclock.ClosedInterval{Duration: orgclock.Duration(minutes)}
}

func TestAccumulator_Add(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		acc := New()
		assert.Equal(t, int64(0), acc.Total().Minutes())
		assert.Equal(t, 0, acc.Count())
	})

	t.Run("should sum durations in arrival order", func(t *testing.T) {
		acc := New()
		acc.Add(interval(90))
		acc.Add(interval(15))

		assert.Equal(t, "1:45", acc.Total().String())
		assert.Equal(t, 2, acc.Count())
	})

	t.Run("should accept zero-duration intervals", func(t *testing.T) {
		acc := New()
		acc.Add(interval(0))

		assert.Equal(t, "0:00", acc.Total().String())
		assert.Equal(t, 1, acc.Count())
	})

	t.Run("should not dedup identical intervals", func(t *testing.T) {
		acc := New()
		acc.Add(interval(30))
		acc.Add(interval(30))

		assert.Equal(t, "1:00", acc.Total().String())
		assert.Equal(t, 2, acc.Count())
	})
}
