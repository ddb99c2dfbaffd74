package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_SetNotifiesSubscribers(t *testing.T) {
	c := NewCell(1)
	var got []int
	unsubscribe := c.Subscribe(func(v int) { got = append(got, v) })

	c.Set(2)
	c.Set(3)
	unsubscribe()
	c.Set(4)

	assert.Equal(t, []int{2, 3}, got)
	assert.Equal(t, 4, c.Get())
}

func TestCell_SubscriberMayReadCell(t *testing.T) {
	c := NewCell("a")
	var seen string
	c.Subscribe(func(string) { seen = c.Get() })

	c.Set("b")

	assert.Equal(t, "b", seen)
}
