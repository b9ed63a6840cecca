package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectReplaysCurrentValue(t *testing.T) {
	s := NewSubject(41)

	var got []int
	sub := s.Subscribe(func(v int) { got = append(got, v) })
	defer sub.Unsubscribe()

	require.Equal(t, []int{41}, got)

	s.Next(42)
	assert.Equal(t, []int{41, 42}, got)
	assert.Equal(t, 42, s.Value())
}

func TestSubscriptionUnsubscribeStopsDelivery(t *testing.T) {
	s := NewSubject("a")

	var got []string
	sub := s.Subscribe(func(v string) { got = append(got, v) })

	s.Next("b")
	sub.Unsubscribe()
	sub.Unsubscribe() // safe to repeat
	s.Next("c")

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCombineLatest2RecomputesOnEitherSource(t *testing.T) {
	a := NewSubject(1)
	b := NewSubject(10)

	sum, sub := CombineLatest2(a, b, func(x, y int) int { return x + y })
	defer sub.Unsubscribe()

	require.Equal(t, 11, sum.Value())

	a.Next(2)
	assert.Equal(t, 12, sum.Value())

	b.Next(20)
	assert.Equal(t, 22, sum.Value())

	sub.Unsubscribe()
	a.Next(100)
	assert.Equal(t, 22, sum.Value())
}

func TestCombineLatest3(t *testing.T) {
	a := NewSubject(1)
	b := NewSubject(2)
	c := NewSubject(3)

	out, sub := CombineLatest3(a, b, c, func(x, y, z int) int { return x*100 + y*10 + z })
	defer sub.Unsubscribe()

	require.Equal(t, 123, out.Value())

	c.Next(9)
	assert.Equal(t, 129, out.Value())
}

func TestCombineLatestSeesPublishesDuringRegistration(t *testing.T) {
	// A source publishing from another goroutine while the combined
	// subject is still registering must not lose the update: once both
	// the publish and the construction have finished, the output holds
	// the latest combination.
	for i := 0; i < 200; i++ {
		a := NewSubject(0)
		b := NewSubject(0)

		done := make(chan struct{})
		go func() {
			a.Next(1)
			close(done)
		}()

		out, sub := CombineLatest2(a, b, func(x, y int) int { return x + y })
		<-done
		assert.Equal(t, 1, out.Value())
		sub.Unsubscribe()
	}
}
