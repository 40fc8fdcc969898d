package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLock_AcquireRelease(t *testing.T) {
	var l Lock
	assert.False(t, l.Locked())

	release := l.Acquire()
	assert.True(t, l.Locked())

	release()
	assert.False(t, l.Locked())
}

func TestLock_ReleaseIsIdempotent(t *testing.T) {
	var l Lock
	r1 := l.Acquire()
	r2 := l.Acquire()

	r1()
	r1()
	assert.True(t, l.Locked(), "second hold must survive a double release of the first")
	assert.Equal(t, 1, l.Holds())

	r2()
	assert.False(t, l.Locked())
	assert.Equal(t, 0, l.Holds())
}
