package frameprovider

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kestrelvision/kestreld/pkg/log"
	"github.com/kestrelvision/kestreld/pkg/video/videobackend"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// MaxFPS is the default maximum serve rate for providers constructed
// without an explicit one.
const MaxFPS = 120

var fs = afero.NewOsFs()

// FileSettings carries the construction parameters for a file backed
// provider. FOV, Orientation and Calibration are stored verbatim
// into the served frames' static properties. A zero MaxFPS means
// MaxFPS, a nil Backend means the default codec backend.
type FileSettings struct {
	FOV         float64
	MaxFPS      int
	Orientation *videoframe.Orientation
	Calibration interface{}
	Backend     videobackend.Backend
}

// FileProvider serves rate limited copies of a single image decoded
// once at construction, standing in for a live camera in pipelines
// which need deterministic frames. Not safe for concurrent Get calls
// beyond pacing: callers wanting parallel consumption should hold
// one provider each.
type FileProvider struct {
	source
	uuid    string
	ordinal int64
	path    string
}

// NewFile decodes the image at path and returns a provider serving
// copies of it. Fails with ErrSourceNotFound when the path does not
// exist and with videobackend.ErrDecodeFailure when the codec cannot
// produce a non-empty image from it.
func NewFile(path string, sett FileSettings) (*FileProvider, error) {
	backend := sett.Backend
	if backend == nil {
		backend = videobackend.Default()
	}
	if sett.MaxFPS == 0 {
		sett.MaxFPS = MaxFPS
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to stat source image %s", path)
	}
	if !exists {
		return nil, errors.Wrapf(ErrSourceNotFound, "invalid path for image: %s", path)
	}

	original, err := backend.DecodeFile(path, videoframe.Metadata{
		FOV:         sett.FOV,
		Orientation: sett.Orientation,
		Calibration: sett.Calibration,
	})
	if err != nil {
		return nil, err
	}

	p := FileProvider{
		source: source{
			pacer:    newPacer(sett.MaxFPS),
			backend:  backend,
			props:    original.Properties(),
			original: original,
		},
		uuid:    uuid.NewString(),
		ordinal: nextOrdinal(),
		path:    path,
	}
	log.Debug(
		"loaded %dx%d source image for provider [%s] (%s)",
		p.props.Dimensions.W, p.props.Dimensions.H, p.Name(), p.uuid,
	)
	return &p, nil
}

// Get serves a fresh copy of the cached image. Infallible once
// construction has succeeded.
func (p *FileProvider) Get() videoframe.Frame {
	return p.get()
}

func (p *FileProvider) Name() string {
	return fmt.Sprintf("FileFrameProvider%d - %s", p.ordinal, filepath.Base(p.path))
}

// UUID identifies this provider instance in logs across restarts of
// the ordinal sequence.
func (p *FileProvider) UUID() string {
	return p.uuid
}
