package frameprovider

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kestrelvision/kestreld/pkg/video/videobackend"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
)

const defaultSyntheticLabel = "testcard"

var defaultSyntheticDimensions = videoframe.Dimensions{W: 600, H: 400}

// SyntheticSettings carries the construction parameters for a
// synthetic provider. Zero values fall back to a 600x400 canvas, the
// "testcard" label, the default max rate and the default backend.
type SyntheticSettings struct {
	Label       string
	Dimensions  videoframe.Dimensions
	FOV         float64
	MaxFPS      int
	Orientation *videoframe.Orientation
	Calibration interface{}
	Backend     videobackend.Backend
}

// SyntheticProvider serves rate limited copies of a test card
// rendered once at construction. Useful for exercising pipelines
// with no image fixtures at all.
type SyntheticProvider struct {
	source
	uuid    string
	ordinal int64
	label   string
}

// NewSynthetic renders the test card and returns a provider serving
// copies of it.
func NewSynthetic(sett SyntheticSettings) (*SyntheticProvider, error) {
	backend := sett.Backend
	if backend == nil {
		backend = videobackend.Default()
	}
	if sett.MaxFPS == 0 {
		sett.MaxFPS = MaxFPS
	}
	if sett.Label == "" {
		sett.Label = defaultSyntheticLabel
	}
	if sett.Dimensions == (videoframe.Dimensions{}) {
		sett.Dimensions = defaultSyntheticDimensions
	}

	meta := videoframe.Metadata{
		FOV:         sett.FOV,
		Orientation: sett.Orientation,
		Calibration: sett.Calibration,
	}
	original, err := videobackend.TestCardFrame(meta.Properties(sett.Dimensions), sett.Label)
	if err != nil {
		return nil, err
	}

	return &SyntheticProvider{
		source: source{
			pacer:    newPacer(sett.MaxFPS),
			backend:  backend,
			props:    original.Properties(),
			original: original,
		},
		uuid:    uuid.NewString(),
		ordinal: nextOrdinal(),
		label:   sett.Label,
	}, nil
}

// Get serves a fresh copy of the rendered test card. Infallible once
// construction has succeeded.
func (p *SyntheticProvider) Get() videoframe.Frame {
	return p.get()
}

func (p *SyntheticProvider) Name() string {
	return fmt.Sprintf("SyntheticFrameProvider%d - %s", p.ordinal, p.label)
}

func (p *SyntheticProvider) UUID() string {
	return p.uuid
}
