package videoframe

import "github.com/pkg/errors"

// ErrShapeMismatch is reported by Frame.CopyTo when the target frame
// already holds a buffer whose dimensions differ from the source's.
// A partially copied or silently resized frame must never be
// observable, so the copy is refused outright.
var ErrShapeMismatch = errors.New("frame dimensions mismatch")
