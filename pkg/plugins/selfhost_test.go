package plugins

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSingleLock_TryLock(t *testing.T) {
	lock := NewSingleLock()

	ctx, cancel := context.WithCancel(context.Background())

	ok, err := lock.TryLock(ctx, "maintenance")
	assert.NoError(t, err)
	assert.True(t, ok)

	// 持有期间同 key 拿不到锁，其他 key 不受影响
	ok, err = lock.TryLock(context.Background(), "maintenance")
	assert.NoError(t, err)
	assert.False(t, ok)

	other, otherCancel := context.WithCancel(context.Background())
	defer otherCancel()
	ok, err = lock.TryLock(other, "cleanup")
	assert.NoError(t, err)
	assert.True(t, ok)

	cancel()
	assert.Eventually(t, func() bool {
		c, done := context.WithCancel(context.Background())
		defer done()
		ok, err := lock.TryLock(c, "maintenance")
		return err == nil && ok
	}, time.Second, time.Millisecond*10)
}
