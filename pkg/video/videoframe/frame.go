package videoframe

type Dimensions struct {
	W, H int
}

// Orientation describes the mounting pitch of the source which
// produced a frame, in degrees from horizontal.
type Orientation struct {
	PitchDegrees float64
}

// Properties is the static description of a frame: everything about
// it which is fixed when its source is constructed. Properties are
// copied by value into each frame, so holders of a frame cannot
// disturb the source's own description.
type Properties struct {
	Dimensions  Dimensions
	FOV         float64
	Orientation *Orientation
	Calibration interface{}
}

// Metadata is the portion of a frame's static description which is
// not derived from the decoded image itself, supplied by whoever
// constructs the source.
type Metadata struct {
	FOV         float64
	Orientation *Orientation
	Calibration interface{}
}

// Properties combines the metadata with the decoded dimensions.
func (m Metadata) Properties(d Dimensions) Properties {
	return Properties{
		Dimensions:  d,
		FOV:         m.FOV,
		Orientation: m.Orientation,
		Calibration: m.Calibration,
	}
}

// Frame pairs a single decoded image buffer with the static
// properties of the source it came from. Implementations own their
// buffer exclusively, sharing of pixel content happens via CopyTo
// only.
type Frame interface {
	DataRef() interface{}
	Dimensions() Dimensions
	Properties() Properties
	// CopyTo replaces the target's buffer contents with a deep copy
	// of this frame's buffer, leaving the target's own properties
	// alone. Copying into a target which already holds a buffer of
	// different dimensions fails with ErrShapeMismatch.
	CopyTo(Frame) error
	Close()
}
