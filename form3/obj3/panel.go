package obj3

import (
	sdf "github.com/soypat/sdfparts"
	"github.com/soypat/sdfparts/form2/obj2"
)

// Panel returns a 3d panel with holes on the edges.
func Panel(k obj2.PanelParams) (sdf.SDF3, error) {
	if !(k.Thickness > 0) {
		return nil, paramErr("panel", "thickness %g must be positive", k.Thickness)
	}
	s, err := obj2.Panel(k)
	if err != nil {
		return nil, paramErr("panel", "%v", err)
	}
	return sdf.Extrude3D(s, k.Thickness), nil
}
