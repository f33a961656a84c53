package videoframe_test

import (
	"testing"

	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"github.com/matryer/is"
)

func TestMetadataCombinesWithDecodedDimensions(t *testing.T) {
	is := is.New(t)

	orientation := &videoframe.Orientation{PitchDegrees: -12.5}
	meta := videoframe.Metadata{FOV: 68.5, Orientation: orientation, Calibration: "payload"}

	props := meta.Properties(videoframe.Dimensions{W: 1280, H: 720})
	is.Equal(props.Dimensions, videoframe.Dimensions{W: 1280, H: 720})
	is.Equal(props.FOV, 68.5)
	is.Equal(props.Orientation, orientation)
	is.Equal(props.Calibration, "payload")
}

func TestMetadataZeroValueLeavesOptionalStaticsUnset(t *testing.T) {
	is := is.New(t)

	props := videoframe.Metadata{}.Properties(videoframe.Dimensions{W: 64, H: 48})
	is.Equal(props.Orientation, nil)
	is.Equal(props.Calibration, nil)
}
