package imagerenderer

import (
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/svgtree"
)

// fitRect computes the rect, in viewBox's own coordinate frame, that a
// naturalW x naturalH source occupies once its aspect ratio has been
// preserved against viewBox per align and slice — SVG's
// preserveAspectRatio collapsed to a single align axis pair and a
// meet/slice choice.
func fitRect(naturalW, naturalH float64, viewBox geom.Rect, align svgtree.ImageAlign, slice bool) geom.Rect {
	if naturalW <= 0 || naturalH <= 0 || viewBox.IsEmpty() {
		return viewBox
	}

	scaleX := viewBox.Width / naturalW
	scaleY := viewBox.Height / naturalH
	scale := scaleX
	if slice {
		if scaleY > scale {
			scale = scaleY
		}
	} else if scaleY < scale {
		scale = scaleY
	}

	fw := naturalW * scale
	fh := naturalH * scale

	var offsetX, offsetY float64
	switch align {
	case svgtree.AlignMin:
		offsetX, offsetY = 0, 0
	case svgtree.AlignMax:
		offsetX, offsetY = viewBox.Width-fw, viewBox.Height-fh
	default:
		offsetX, offsetY = (viewBox.Width-fw)/2, (viewBox.Height-fh)/2
	}

	return geom.Rect{
		X:      viewBox.X + offsetX,
		Y:      viewBox.Y + offsetY,
		Width:  fw,
		Height: fh,
	}
}
