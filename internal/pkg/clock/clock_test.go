package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	t.Parallel()

	before := time.Now()
	now := System().Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestFixed(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
	c := NewFixed(base)

	assert.Equal(t, base, c.Now())
	assert.Equal(t, base, c.Now(), "호출할 때마다 같은 시각이어야 합니다")

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, base.Add(1500*time.Millisecond), c.Now())

	other := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	c.Set(other)
	assert.Equal(t, other, c.Now())
}

func TestFixed_ImplementsClock(t *testing.T) {
	t.Parallel()

	var _ Clock = NewFixed(time.Time{})
	var _ Clock = System()
}
