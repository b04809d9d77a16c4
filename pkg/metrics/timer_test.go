package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimer(t *testing.T) {
	timer := NewTimer()
	require.NotNil(t, timer)
	assert.False(t, timer.start.IsZero())
	assert.Less(t, time.Since(timer.start), time.Second)
}

func TestTimerDuration(t *testing.T) {
	timer := NewTimer()

	sleep := 50 * time.Millisecond
	time.Sleep(sleep)

	assert.GreaterOrEqual(t, timer.Duration(), sleep)
}

func TestTimerObserveDuration(t *testing.T) {
	hist := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "test_timer_seconds",
		Help: "test histogram",
	})

	timer := NewTimer()
	timer.ObserveDuration(hist)

	require.Equal(t, 1, testutil.CollectAndCount(hist))
}

func TestSetResourceStatus(t *testing.T) {
	statuses := []string{"stopped", "runningOnHome"}
	SetResourceStatus("ost0", statuses, "runningOnHome")

	assert.Equal(t, 0.0, testutil.ToFloat64(ResourceStatus.WithLabelValues("ost0", "stopped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ResourceStatus.WithLabelValues("ost0", "runningOnHome")))

	// Flipping the active status clears the previous one.
	SetResourceStatus("ost0", statuses, "stopped")
	assert.Equal(t, 1.0, testutil.ToFloat64(ResourceStatus.WithLabelValues("ost0", "stopped")))
	assert.Equal(t, 0.0, testutil.ToFloat64(ResourceStatus.WithLabelValues("ost0", "runningOnHome")))
}
