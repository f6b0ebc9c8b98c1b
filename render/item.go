package render

import "github.com/gogpu/annotate"

// Kind identifies the geometry family of an annotation item.
type Kind int

const (
	// KindArrow is a tactical arrow built from a pointer gesture.
	KindArrow Kind = iota
	// KindRect is an axis-aligned rectangle.
	KindRect
	// KindEllipse is an ellipse inscribed in its bounds.
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindArrow:
		return "arrow"
	case KindRect:
		return "rect"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// SelectionState describes whether an item is currently selected.
type SelectionState int

const (
	// NotSelected renders the item without adornments.
	NotSelected SelectionState = iota
	// Selected renders resize handles and a dashed outline around the
	// item when the engine has handle rendering enabled.
	Selected
)

// Style is the visual style of an annotation item, used verbatim when
// constructing brushes.
type Style struct {
	Stroke      annotate.RGBA // stroke color
	StrokeWidth float64       // stroke width; also the arrow's weight input
	Opacity     float64       // overall opacity multiplier in [0, 1]
	Fill        annotate.RGBA // interior color for filled shapes
	Filled      bool          // whether rect/ellipse interiors are painted
}

// Item is the engine's read-only view of one annotation. Items are
// owned by the embedding application; the engine never mutates them.
//
// ID must be stable for the lifetime of the item: it keys the
// geometry cache.
type Item interface {
	ID() uint64
	Visible() bool
	ZIndex() int
	Kind() Kind
	Style() Style
	Bounds() annotate.Rect
	Selection() SelectionState
}

// ArrowItem is an Item whose geometry is an arrow gesture.
type ArrowItem interface {
	Item
	Arrow() (start, end annotate.Point, trail []annotate.Point)
}

// BoxItem is an Item whose geometry is defined by a rectangle
// (rectangles and ellipses).
type BoxItem interface {
	Item
	Box() annotate.Rect
}

// DrawObject is a reusable draw handle the engine attaches to the
// canvas. Its fields are only valid while attached; detached objects
// return to the engine's pool and are reset.
type DrawObject struct {
	Geometry    *annotate.Path
	Fill        annotate.Brush // nil for unfilled outlines
	Stroke      annotate.Brush // nil for fill-only figures
	StrokeWidth float64
	Offset      annotate.Vec2 // affine translation, e.g. the shadow offset
	Z           int           // paint-order hint, mirrors the attach z
}

// reset clears all slots so a pooled object carries nothing stale.
func (d *DrawObject) reset() {
	*d = DrawObject{}
}

// Canvas is the scene-graph sink the engine pushes draw objects into.
// Attach inserts an object with a z-order hint; insertion order within
// one render call is ascending z and canvases honoring insertion order
// need not consult z at all.
type Canvas interface {
	Attach(obj *DrawObject, z int)
	Detach(obj *DrawObject)
	Children() []*DrawObject
}
