package selection

import (
	"context"
	"testing"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCommitsAndClearsBuffer(t *testing.T) {
	var got []string
	in := NewInput(func(loc string) bool {
		got = append(got, loc)
		return true
	})

	in.SetBuffer("Saffron Walden")
	require.True(t, in.Submit())

	assert.Equal(t, []string{"Saffron Walden"}, got)
	assert.Empty(t, in.Buffer())
}

func TestSubmitBlankKeepsBuffer(t *testing.T) {
	calls := 0
	in := NewInput(func(string) bool {
		calls++
		return true
	})

	in.SetBuffer("   ")
	assert.False(t, in.Submit())
	assert.Equal(t, "   ", in.Buffer())
	assert.Zero(t, calls)
}

func TestRejectedCommitKeepsBuffer(t *testing.T) {
	in := NewInput(func(string) bool { return false })
	in.SetBuffer("Cambridge")

	assert.False(t, in.Submit())
	assert.Equal(t, "Cambridge", in.Buffer())

	var nilCommit Input
	nilCommit.SetBuffer("Cambridge")
	assert.False(t, nilCommit.Submit())
}

func TestUseCurrentLocation(t *testing.T) {
	var got string
	in := NewInput(func(loc string) bool {
		got = loc
		return true
	})

	in.SetBuffer("half typed")
	require.True(t, in.UseCurrentLocation())
	assert.Equal(t, "Braintree, England, United Kingdom", got)
	assert.Empty(t, in.Buffer())
}

func TestCollapsedAndEdit(t *testing.T) {
	in := NewInput(func(string) bool { return true })

	assert.False(t, in.Collapsed(""), "nothing selected shows the full input")
	assert.True(t, in.Collapsed("Cambridge"))

	in.Edit()
	assert.True(t, in.Editing())
	assert.False(t, in.Collapsed("Cambridge"))

	in.SetBuffer("Colchester")
	require.True(t, in.Submit())
	assert.True(t, in.Collapsed("Colchester"), "a commit collapses the input again")

	in.Edit()
	in.SetBuffer("draft")
	in.CancelEdit()
	assert.True(t, in.Collapsed("Colchester"))
	assert.Empty(t, in.Buffer())
}

func TestShortcutScenario(t *testing.T) {
	c, sched := newTestController()
	in := NewInput(c.Commit)
	provider := destination.NewStaticProvider()

	require.True(t, in.UseCurrentLocation())
	assert.Equal(t, PhaseCommitting, c.State().Phase)

	sched.Advance(DefaultTransitionDelay)
	s := c.State()
	require.Equal(t, PhaseShowing, s.Phase)
	assert.Equal(t, "Braintree, England, United Kingdom", s.Location)

	cards, err := provider.Destinations(context.Background(), s.Location)
	require.NoError(t, err)
	require.Len(t, cards, 5)
	assert.Equal(t, "Whittlesford", cards[0].Name)
	assert.Equal(t, "38.2km", cards[0].DistanceLabel)
}

func TestWhitespaceSubmitScenario(t *testing.T) {
	c, sched := newTestController()
	in := NewInput(c.Commit)

	in.SetBuffer("   ")
	assert.False(t, in.Submit())

	sched.Advance(DefaultTransitionDelay * 2)
	assert.Equal(t, PhaseIdle, c.State().Phase)
	assert.Empty(t, c.State().Location)
	assert.Equal(t, "   ", in.Buffer())
}

func TestReEditFromCollapsedIsImmediate(t *testing.T) {
	c, sched := newTestController()
	in := NewInput(c.Commit)

	in.SetBuffer("Cambridge")
	require.True(t, in.Submit())
	sched.Advance(DefaultTransitionDelay)
	require.True(t, in.Collapsed(c.State().Location))

	in.Edit()
	in.SetBuffer("Bury St Edmunds")
	require.True(t, in.Submit())

	assert.Equal(t, "Bury St Edmunds", c.State().Location)
	assert.True(t, in.Collapsed(c.State().Location))
}

func TestResultsInvariantUnderLocation(t *testing.T) {
	provider := destination.NewStaticProvider()

	shown := func(loc string) []destination.Destination {
		c, sched := newTestController()
		in := NewInput(c.Commit)
		in.SetBuffer(loc)
		require.True(t, in.Submit())
		sched.Advance(DefaultTransitionDelay)

		got, err := provider.Destinations(context.Background(), c.State().Location)
		require.NoError(t, err)

		return got
	}

	assert.Equal(t, shown("Cambridge"), shown("Nowhere, XYZ"))
}
