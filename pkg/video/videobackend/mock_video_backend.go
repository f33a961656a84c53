package videobackend

import (
	"path/filepath"

	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"gocv.io/x/gocv"
)

// default canvas for mock decodes, roughly webcam shaped
var mockDecodeDimensions = videoframe.Dimensions{W: 600, H: 400}

type mockVideoBackend struct{}

func (b *mockVideoBackend) NewFrame(props videoframe.Properties) videoframe.Frame {
	return &openCVFrame{mat: gocv.NewMat(), props: props}
}

// DecodeFile never touches the codec. It renders a test card stamped
// with the file's base name so that pipelines wired against the mock
// backend still receive distinguishable frames per source.
func (b *mockVideoBackend) DecodeFile(path string, meta videoframe.Metadata) (videoframe.Frame, error) {
	return TestCardFrame(meta.Properties(mockDecodeDimensions), filepath.Base(path))
}
