package frameprovider

import (
	"time"

	"github.com/spf13/afero"
)

// ResetOrdinals rewinds the process-wide naming sequence so tests do
// not leak ordinals into each other.
var ResetOrdinals = resetOrdinals

// OverloadSleep swaps the pacing suspension for the given stub and
// returns a func which restores the real one.
func OverloadSleep(overload func(time.Duration)) func() {
	previous := sleep
	sleep = overload
	return func() {
		sleep = previous
	}
}

// OverloadFS swaps the fs used for source existence checks and
// returns a func which restores the previous one.
func OverloadFS(overload afero.Fs) func() {
	previous := fs
	fs = overload
	return func() {
		fs = previous
	}
}
