// Package referenceframe tags positions and orientations with the named coordinate frame they are expressed in,
// and moves them between two frames with rigid transforms. A transform is either given explicitly or estimated
// from reference points observed in both frames, e.g. the same markers located by a robot and in an asset's map.
package referenceframe

import "strconv"

// Frame names a coordinate system. Two frames are the same frame exactly when their names are equal, so Frame
// values may be compared with ==.
type Frame struct {
	name string
}

// NewFrame returns the frame with the given name.
func NewFrame(name string) Frame {
	return Frame{name: name}
}

// Name returns the name of the frame.
func (f Frame) Name() string {
	return f.name
}

func (f Frame) String() string {
	return strconv.Quote(f.name)
}
