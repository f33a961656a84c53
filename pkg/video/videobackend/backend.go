package videobackend

import (
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
)

// Backend abstracts the image codec collaborator. It decodes still
// images from disk into frames and allocates empty frames for copies
// to land in.
type Backend interface {
	// NewFrame allocates a frame with the given static properties and
	// no pixel buffer yet. The buffer is filled by a later CopyTo.
	NewFrame(videoframe.Properties) videoframe.Frame
	// DecodeFile decodes the image at path and returns a frame whose
	// dimensions come from the decoded image and whose remaining
	// static properties come from meta. A decode which produces an
	// empty image fails with ErrDecodeFailure.
	DecodeFile(path string, meta videoframe.Metadata) (videoframe.Frame, error)
}

func Default() Backend {
	return OpenCV()
}

func OpenCV() Backend {
	return &openCVBackend{}
}

func Mock() Backend {
	return &mockVideoBackend{}
}

func Resolve(t string) Backend {
	switch t {
	case "mock":
		return Mock()
	default:
		return Default()
	}
}
