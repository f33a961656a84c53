package frameprovider

import "github.com/pkg/errors"

// ErrSourceNotFound is reported when a file backed provider is
// constructed against a path which does not exist. Distinguishable
// from a decode failure so operators can tell a missing file from a
// corrupt or unsupported one.
var ErrSourceNotFound = errors.New("source image path does not exist")
