package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	var bus Bus[int]
	var got []int

	dispose := bus.Subscribe(func(v int) { got = append(got, v) })
	bus.Publish(1)
	bus.Publish(2)
	dispose()
	bus.Publish(3)

	assert.Equal(t, []int{1, 2}, got)
}

func TestBus_DisposeIsIdempotent(t *testing.T) {
	var bus Bus[string]
	first := bus.Subscribe(func(string) {})
	bus.Subscribe(func(string) {})
	require.Equal(t, 2, bus.Len())

	first()
	first()
	first()

	assert.Equal(t, 1, bus.Len())
}

func TestBus_ListenerMayDisposeItself(t *testing.T) {
	var bus Bus[int]
	calls := 0
	var dispose func()
	dispose = bus.Subscribe(func(int) {
		calls++
		dispose()
	})

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Len())
}
