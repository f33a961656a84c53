package frameprovider

import (
	"sync/atomic"

	"github.com/kestrelvision/kestreld/pkg/log"
	"github.com/kestrelvision/kestreld/pkg/video/videobackend"
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
)

// Provider is the capability contract every frame source satisfies,
// whether frames come from a sensor, a file or are synthesised.
// Pipelines depend on this and never on concrete source types.
type Provider interface {
	// Get returns the next available frame. It may block briefly to
	// enforce pacing but never indefinitely, and never returns nil: a
	// source which cannot produce frames fails construction instead.
	Get() videoframe.Frame
	// Name is a stable human readable identifier for diagnostics.
	Name() string
}

// process-wide ordinal sequence for provider naming
var instanceCount int64

func nextOrdinal() int64 {
	return atomic.AddInt64(&instanceCount, 1) - 1
}

func resetOrdinals() {
	atomic.StoreInt64(&instanceCount, 0)
}

// source holds the state common to providers which serve copies of a
// single cached frame: the owned original, the properties stamped
// onto every copy and the pacing state. The original's buffer is
// only ever copied from, never handed out.
type source struct {
	pacer
	backend  videobackend.Backend
	props    videoframe.Properties
	original videoframe.Frame
}

// get serves a fresh frame carrying the source's static properties
// and a deep copy of the original's pixel content, then paces.
func (s *source) get() videoframe.Frame {
	out := s.backend.NewFrame(s.props)
	if err := s.original.CopyTo(out); err != nil {
		// cannot mismatch, the target was allocated from the same
		// properties as the original
		log.Error("unable to copy cached frame into output frame: %s", err.Error())
	}
	s.wait()
	return out
}

// Properties exposes the static description shared by every frame
// this source serves.
func (s *source) Properties() videoframe.Properties {
	return s.props
}

// Close releases the cached original's buffer. Frames already served
// are unaffected, they own their own copies.
func (s *source) Close() {
	s.original.Close()
}
