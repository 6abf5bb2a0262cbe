package controls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procman/internal/config"
)

func newControls(t *testing.T) Controls {
	t.Helper()

	return New(config.DefaultConfig())
}

func Test_New(t *testing.T) {
	c := newControls(t)

	assert.False(t, c.Active())
	assert.False(t, c.Paused())
	assert.Equal(t, SortByCPU, c.SortBy())
	assert.Equal(t, NoFilter, c.Filter())
	assert.Equal(t, time.Duration(config.DefaultIntervalSeconds)*time.Second, c.Interval())
}

func Test_Activate(t *testing.T) {
	c := newControls(t)

	assert.True(t, c.Activate())
	assert.True(t, c.Active())

	// second activation is a no-op
	assert.False(t, c.Activate())

	c.SetPaused(true)
	c.Deactivate()
	assert.False(t, c.Active())

	// activating again resets the pause gate
	assert.True(t, c.Activate())
	assert.False(t, c.Paused())
}

func Test_Deactivate_BroadcastsWake(t *testing.T) {
	c := newControls(t)
	require.True(t, c.Activate())

	done := make(chan bool, 1)

	go func() {
		// one hour: only the broadcast can end this wait promptly
		done <- c.Wait(time.Hour)
	}()

	time.Sleep(20 * time.Millisecond)
	c.Deactivate()

	select {
	case completed := <-done:
		assert.False(t, completed, "Wait should report interruption")
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Deactivate broadcast")
	}
}

func Test_Wait_Elapses(t *testing.T) {
	c := newControls(t)
	require.True(t, c.Activate())

	assert.True(t, c.Wait(time.Millisecond))
	assert.True(t, c.WaitQuantum())
}

func Test_Done_ClosedBeforeFirstActivate(t *testing.T) {
	c := newControls(t)

	select {
	case <-c.Done():
	default:
		t.Fatal("Done should be closed before the first Activate")
	}
}

func Test_SettersAndGetters(t *testing.T) {
	c := newControls(t)

	c.SetSortBy(SortByMemory)
	assert.Equal(t, SortByMemory, c.SortBy())

	f, err := ParseFilter("cpu", "2.5")
	require.NoError(t, err)

	c.SetFilter(f)
	assert.Equal(t, FilterCPU, c.Filter().Kind)

	c.SetIntervalSeconds(30)
	assert.Equal(t, 30*time.Second, c.Interval())

	c.SetPaused(true)
	assert.True(t, c.Paused())
	c.SetPaused(false)
	assert.False(t, c.Paused())
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
