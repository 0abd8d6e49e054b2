package editor

import (
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

type membership struct {
	shape shapes.Shape
	owner string
	state shapes.StateFlags
}

func captureMembership(list ...shapes.Shape) []membership {
	out := make([]membership, len(list))
	for i, s := range list {
		out[i] = membership{shape: s, owner: s.Owner(), state: s.State()}
	}
	return out
}

// membershipState is a layer sequence plus the owner and flags of the
// shapes that moved in or out of a group.
type membershipState struct {
	layer   *scene.Layer
	shapes  []shapes.Shape
	members []membership
}

func (st membershipState) Apply() {
	for _, m := range st.members {
		m.shape.SetOwner(m.owner)
		m.shape.SetState(m.state)
	}
	st.layer.SetShapes(st.shapes)
	st.layer.RaiseInvalidate()
}
