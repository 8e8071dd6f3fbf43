package mesh

// MinResolution is the smallest stack or slice count that still yields a
// non-degenerate surface.
const MinResolution = 3

// Resolution is the tessellation density: Stacks vertical bands and Slices
// angular samples per ring.
type Resolution struct {
	Stacks int
	Slices int
}

// Normalize raises either count to MinResolution if it is below it.
func (r Resolution) Normalize() Resolution {
	if r.Stacks < MinResolution {
		r.Stacks = MinResolution
	}
	if r.Slices < MinResolution {
		r.Slices = MinResolution
	}
	return r
}

// IncStacks adds one stack. There is no upper bound.
func (r *Resolution) IncStacks() {
	r.Stacks++
}

// DecStacks removes one stack unless already at MinResolution.
func (r *Resolution) DecStacks() {
	if r.Stacks > MinResolution {
		r.Stacks--
	}
}

// IncSlices adds one slice. There is no upper bound.
func (r *Resolution) IncSlices() {
	r.Slices++
}

// DecSlices removes one slice unless already at MinResolution.
func (r *Resolution) DecSlices() {
	if r.Slices > MinResolution {
		r.Slices--
	}
}
