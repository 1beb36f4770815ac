package gosiebsp

import "image/color"

type batchCall struct {
	kind        string
	xp, yp      []float32
	fill        color.RGBA
	stroke      color.RGBA
	strokeWidth float32
}

// recordingBatcher keeps every call in order.
type recordingBatcher struct {
	calls []batchCall
}

func (b *recordingBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	b.calls = append(b.calls, batchCall{kind: "fill", xp: xp, yp: yp, fill: clr})
}

func (b *recordingBatcher) AddOutline(xp, yp []float32, clr color.RGBA, strokeWidth float32) {
	b.calls = append(b.calls, batchCall{kind: "outline", xp: xp, yp: yp, stroke: clr, strokeWidth: strokeWidth})
}

func (b *recordingBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.calls = append(b.calls, batchCall{
		kind:        "fill+outline",
		xp:          xp,
		yp:          yp,
		fill:        fillClr,
		stroke:      strokeClr,
		strokeWidth: strokeWidth,
	})
}
