package frameprovider_test

import (
	"testing"

	"github.com/kestrelvision/kestreld/pkg/frameprovider"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ frameprovider.Provider = (*frameprovider.SyntheticProvider)(nil)

func TestNewSyntheticFallsBackToDefaults(t *testing.T) {
	stubSleep(t)
	frameprovider.ResetOrdinals()

	provider, err := frameprovider.NewSynthetic(frameprovider.SyntheticSettings{FOV: 70})
	require.NoError(t, err)
	require.NotNil(t, provider)

	props := provider.Properties()
	assert.Equal(t, videoframe.Dimensions{W: 600, H: 400}, props.Dimensions)
	assert.Equal(t, 70.0, props.FOV)
	assert.Equal(t, "SyntheticFrameProvider0 - testcard", provider.Name())
	assert.NotEmpty(t, provider.UUID())

	provider.Close()
}

func TestNewSyntheticRendersAtRequestedDimensions(t *testing.T) {
	stubSleep(t)

	provider, err := frameprovider.NewSynthetic(frameprovider.SyntheticSettings{
		Label:      "pattern-cam",
		Dimensions: videoframe.Dimensions{W: 320, H: 240},
	})
	require.NoError(t, err)
	defer provider.Close()

	frame := provider.Get()
	require.NotNil(t, frame)
	defer frame.Close()

	assert.Equal(t, videoframe.Dimensions{W: 320, H: 240}, frame.Dimensions())
	assert.Contains(t, provider.Name(), "pattern-cam")
}

func TestSyntheticGetsServeIsolatedFrameInstances(t *testing.T) {
	stubSleep(t)

	provider, err := frameprovider.NewSynthetic(frameprovider.SyntheticSettings{
		Dimensions: videoframe.Dimensions{W: 64, H: 64},
	})
	require.NoError(t, err)
	defer provider.Close()

	first := provider.Get()
	second := provider.Get()
	defer first.Close()
	defer second.Close()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Properties(), second.Properties())
}
