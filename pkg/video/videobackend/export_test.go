package videobackend

import "gocv.io/x/gocv"

// OverloadIMReadFile swaps the codec read for the given stub and
// returns a func which restores the real one.
func OverloadIMReadFile(overload func(string) gocv.Mat) func() {
	previous := imreadFile
	imreadFile = overload
	return func() {
		imreadFile = previous
	}
}
