package videobackend

import "github.com/pkg/errors"

// ErrDecodeFailure is reported when the codec decodes a source image
// into an empty (zero width or height) buffer, which is its signal
// for an unsupported format or a corrupt file.
var ErrDecodeFailure = errors.New("image decode produced an empty frame")
