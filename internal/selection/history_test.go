package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRecorder struct {
	locations []string
	err       error
}

func (m *memoryRecorder) AddLocation(location string) error {
	m.locations = append(m.locations, location)

	return m.err
}

func TestRecordSettledOncePerSettle(t *testing.T) {
	c, sched := newTestController()
	rec := &memoryRecorder{}
	RecordSettled(c, rec)

	require.True(t, c.Commit("first"))
	require.True(t, c.Commit("second"))
	assert.Empty(t, rec.locations, "nothing is recorded before the transition completes")

	sched.Advance(DefaultTransitionDelay)
	assert.Equal(t, []string{"second"}, rec.locations)

	require.True(t, c.Commit("Cambridge"))
	require.True(t, c.Commit("Cambridge"))
	assert.Equal(t, []string{"second", "Cambridge", "Cambridge"}, rec.locations)

	c.Commit("   ")
	assert.Len(t, rec.locations, 3)
}

func TestRecordSettledKeepsGoingOnError(t *testing.T) {
	c, _ := newTestController(WithDelay(0))
	rec := &memoryRecorder{err: errors.New("disk full")}
	RecordSettled(c, rec)

	var seen int
	c.Subscribe(func(State) { seen++ })

	require.True(t, c.Commit("Colchester"))
	assert.Equal(t, []string{"Colchester"}, rec.locations)
	assert.Equal(t, 1, seen)
}

func TestRecordSettledNilArguments(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordSettled(nil, &memoryRecorder{})
		c, _ := newTestController()
		RecordSettled(c, nil)
		c.Commit("x")
	})
}
