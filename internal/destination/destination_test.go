package destination

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueOrder(t *testing.T) {
	entries := Catalogue()
	require.Len(t, entries, 5)

	names := make([]string, len(entries))
	for i, d := range entries {
		names[i] = d.Name
		assert.Equal(t, i+1, d.ID)
		assert.Equal(t, WeatherDryAllDay, d.WeatherStatus)
		assert.Len(t, d.Activities, 5)
	}

	assert.Equal(t, []string{"Whittlesford", "Cambridge", "Saffron Walden", "Colchester", "Bury St Edmunds"}, names)
	assert.Equal(t, "38.2km", entries[0].DistanceLabel)
	assert.Equal(t, "58.7km", entries[4].DistanceLabel)
}

func TestStaticProviderIgnoresLocation(t *testing.T) {
	p := NewStaticProvider()
	ctx := context.Background()

	cambridge, err := p.Destinations(ctx, "Cambridge")
	require.NoError(t, err)

	nowhere, err := p.Destinations(ctx, "Nowhere, XYZ")
	require.NoError(t, err)

	assert.Equal(t, cambridge, nowhere)
	assert.Len(t, nowhere, 5)
}

func TestStaticProviderRejectsBlankLocation(t *testing.T) {
	p := NewStaticProvider()

	for _, loc := range []string{"", "   ", "\t\n"} {
		got, err := p.Destinations(context.Background(), loc)
		require.ErrorIs(t, err, ErrNoLocation, "location %q", loc)
		assert.Nil(t, got)
	}
}

func TestStaticProviderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticProvider().Destinations(ctx, "Cambridge")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCallersCannotMutateCatalogue(t *testing.T) {
	p := NewStaticProvider()

	first, err := p.Destinations(context.Background(), "Braintree")
	require.NoError(t, err)

	first[0].Name = "Somewhere wet"
	first[0].Activities[0] = "puddles"
	first = append(first[:1], first[2:]...)
	require.Len(t, first, 4)

	again, err := p.Destinations(context.Background(), "Braintree")
	require.NoError(t, err)
	require.Len(t, again, 5)
	assert.Equal(t, "Whittlesford", again[0].Name)
	assert.Equal(t, "attractions", again[0].Activities[0])
	assert.Equal(t, "Whittlesford", Catalogue()[0].Name)
}

func TestNewStaticProviderWithCopiesInput(t *testing.T) {
	in := []Destination{{ID: 7, Name: "Testville", DistanceLabel: "1km", Activities: []string{"tests"}}}
	p := NewStaticProviderWith(in)
	in[0].Name = "changed"

	got, err := p.Destinations(context.Background(), "anywhere")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Testville", got[0].Name)
}

func TestAttributions(t *testing.T) {
	attrs := Attributions()
	require.Len(t, attrs, 3)
	assert.Equal(t, "https://open-meteo.com", attrs[0].URL)
	assert.Equal(t, "https://opentripmap.io", attrs[1].URL)
	assert.Equal(t, "https://www.openstreetmap.org", attrs[2].URL)
}

func TestCreditsLine(t *testing.T) {
	assert.Equal(t,
		"Weather data from Open-Meteo · Places from OpenTripMap · Maps by OpenStreetMap",
		CreditsLine())
}
