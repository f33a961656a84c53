package videobackend

import (
	"github.com/kestrelvision/kestreld/pkg/video/videoframe"
	"github.com/pkg/errors"
	"github.com/tauraamui/xerror"
	"gocv.io/x/gocv"
)

type openCVFrame struct {
	isClosed bool
	mat      gocv.Mat
	props    videoframe.Properties
}

func (frame *openCVFrame) DataRef() interface{} {
	return &frame.mat
}

func (frame *openCVFrame) Dimensions() videoframe.Dimensions {
	return videoframe.Dimensions{W: frame.mat.Cols(), H: frame.mat.Rows()}
}

func (frame *openCVFrame) Properties() videoframe.Properties {
	return frame.props
}

func (frame *openCVFrame) CopyTo(target videoframe.Frame) error {
	mat, ok := target.DataRef().(*gocv.Mat)
	if !ok {
		return xerror.New("must pass OpenCV frame to OpenCV frame copy")
	}
	if !mat.Empty() {
		src, dst := frame.Dimensions(), target.Dimensions()
		if src != dst {
			return errors.Wrapf(
				videoframe.ErrShapeMismatch,
				"cannot copy %dx%d frame into %dx%d target", src.W, src.H, dst.W, dst.H,
			)
		}
	}
	frame.mat.CopyTo(mat)
	return nil
}

func (frame *openCVFrame) Close() {
	if !frame.isClosed {
		frame.mat.Close()
		frame.isClosed = true
	}
}

type openCVBackend struct{}

func (b *openCVBackend) NewFrame(props videoframe.Properties) videoframe.Frame {
	return &openCVFrame{mat: gocv.NewMat(), props: props}
}

func (b *openCVBackend) DecodeFile(path string, meta videoframe.Metadata) (videoframe.Frame, error) {
	mat := imreadFile(path)
	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		mat.Close()
		return nil, errors.Wrapf(ErrDecodeFailure, "unable to decode image at %s", path)
	}
	dimensions := videoframe.Dimensions{W: mat.Cols(), H: mat.Rows()}
	return &openCVFrame{mat: mat, props: meta.Properties(dimensions)}, nil
}

var imreadFile = func(path string) gocv.Mat {
	return gocv.IMRead(path, gocv.IMReadColor)
}
