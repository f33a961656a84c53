package videobackend_test

import (
	"testing"

	"github.com/kestrelvision/kestreld/pkg/video/videobackend"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"github.com/matryer/is"
)

func TestBackendsResolvable(t *testing.T) {
	is := is.New(t)
	is.True(videobackend.Default() != nil)
	is.True(videobackend.Resolve("") != nil)
	is.True(videobackend.Resolve("mock") != nil)
}

func TestMockBackendDecodeIgnoresFileContents(t *testing.T) {
	is := is.New(t)

	frame, err := videobackend.Mock().DecodeFile("/does/not/exist/cam1.jpg", videoframe.Metadata{FOV: 70})
	is.NoErr(err)
	defer frame.Close()

	is.Equal(frame.Dimensions(), videoframe.Dimensions{W: 600, H: 400})
	is.Equal(frame.Properties().FOV, 70.0)
}
