package spacetime

import "fmt"

// TimeSlabs divides the extrusion range [TMin,TMax] into NSlabs uniform,
// contiguous slabs. Slab bounds are computed from the absolute slab position
// as an affine blend of TMin and TMax, never by repeated addition, so the two
// domain extremes are hit exactly and consecutive slabs share their bound
// bit-for-bit.
type TimeSlabs struct {
	TMin, TMax float64
	NSlabs     int
}

// NewTimeSlabs validates and builds the slab geometry.
func NewTimeSlabs(tMin, tMax float64, nSlabs int) (ts TimeSlabs, err error) {
	if nSlabs < 1 {
		err = fmt.Errorf("%w: need at least one time slab, got %d", ErrConfiguration, nSlabs)
		return
	}
	if tMax <= tMin {
		err = fmt.Errorf("%w: need TMax > TMin, got [%g,%g]", ErrConfiguration, tMin, tMax)
		return
	}
	ts = TimeSlabs{TMin: tMin, TMax: tMax, NSlabs: nSlabs}
	return
}

func (ts TimeSlabs) boundAt(i int) float64 {
	theta := float64(i) / float64(ts.NSlabs)
	return (1-theta)*ts.TMin + theta*ts.TMax
}

// Bounds returns the two bounding time values of slab i.
func (ts TimeSlabs) Bounds(i int) (tLo, tHi float64, err error) {
	if i < 0 || i >= ts.NSlabs {
		err = fmt.Errorf("%w: slab index %d outside [0,%d)", ErrIndexOutOfRange, i, ts.NSlabs)
		return
	}
	tLo = ts.boundAt(i)
	tHi = ts.boundAt(i + 1)
	return
}

// InterpolateTime maps the local time coordinate sT in [-1,1] affinely onto
// slab i's time range.
func (ts TimeSlabs) InterpolateTime(i int, sT float64) (t float64, err error) {
	var tLo, tHi float64
	if tLo, tHi, err = ts.Bounds(i); err != nil {
		return
	}
	t = 0.5*(1-sT)*tLo + 0.5*(1+sT)*tHi
	return
}
