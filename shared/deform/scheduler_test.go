package deform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(100*time.Millisecond, func() { order = append(order, "b") })

	assert.Equal(t, 0, s.Advance(50*time.Millisecond))
	assert.Equal(t, 3, s.Pending())

	assert.Equal(t, 2, s.Advance(60*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, order)

	assert.Equal(t, 1, s.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	tok := s.After(time.Millisecond, func() { fired = true })

	assert.True(t, tok.Active())
	assert.True(t, tok.Cancel())
	assert.False(t, tok.Cancel(), "second cancel is a no-op")
	assert.False(t, tok.Active())

	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestSchedulerCancelAfterFire(t *testing.T) {
	s := NewScheduler()
	tok := s.After(0, func() {})
	s.Advance(0)
	assert.False(t, tok.Cancel())
}

func TestSchedulerNestedTasks(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(10*time.Millisecond, func() {
		order = append(order, 1)
		s.After(0, func() { order = append(order, 2) })
		s.After(time.Second, func() { order = append(order, 3) })
	})

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, s.Pending())
	assert.Equal(t, 20*time.Millisecond, s.Now())
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	s.After(time.Millisecond, func() { t.Fatal("cancelled task fired") })
	s.After(time.Millisecond, func() { t.Fatal("cancelled task fired") })

	assert.Equal(t, 2, s.CancelAll())
	assert.Equal(t, 0, s.Advance(time.Second))
}

func TestZeroToken(t *testing.T) {
	var tok Token
	assert.False(t, tok.Active())
	assert.False(t, tok.Cancel())
}
