package render

import (
	"sort"

	"github.com/gogpu/annotate"
)

// Adornment colors shared by all engines.
var (
	handleFill   = annotate.White
	handleStroke = annotate.RGBA{R: 0.16, G: 0.45, B: 0.93, A: 1}
)

// Engine renders a collection of annotation items into a Canvas,
// caching built geometry per item and recycling draw objects through a
// free list. Caches and pools live on the engine instance: one engine
// per document or window, never shared.
//
// Per item the engine moves through Uncached, Cached(valid) and
// Cached(stale) states; removal returns it to Uncached. No cache entry
// is load-bearing for correctness, only for performance.
type Engine struct {
	canvas   Canvas
	cache    *geometryCache
	attached map[uint64][]*DrawObject
	pool     *drawPool

	showHandles bool
	showShadows bool
	name        string
}

// Option configures an Engine.
type Option func(*Engine)

// WithHandles controls whether selected items get resize handles and a
// dashed outline. Enabled by default; capture flows disable it so
// adornments never end up in the exported image.
func WithHandles(enabled bool) Option {
	return func(e *Engine) { e.showHandles = enabled }
}

// WithShadows controls whether arrow drop shadows are attached.
// Enabled by default.
func WithShadows(enabled bool) Option {
	return func(e *Engine) { e.showShadows = enabled }
}

// WithName labels the engine's log output, distinguishing engines when
// several documents render concurrently.
func WithName(name string) Option {
	return func(e *Engine) { e.name = name }
}

// New creates an engine drawing into canvas.
func New(canvas Canvas, opts ...Option) *Engine {
	e := &Engine{
		canvas:      canvas,
		cache:       newGeometryCache(),
		attached:    make(map[uint64][]*DrawObject),
		pool:        newDrawPool(),
		showHandles: true,
		showShadows: true,
		name:        "annotations",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RenderAll discards every cached geometry and draw object, then
// renders all visible items in ascending z order (stable for equal z).
func (e *Engine) RenderAll(items []Item) {
	for id := range e.attached {
		e.detach(id)
	}
	e.cache.Clear()

	for _, item := range sortedByZ(items) {
		if item.Visible() {
			e.Render(item)
		}
	}
}

// RenderChanged re-renders the items whose effective bounds intersect
// at least one dirty region. Regions are merged first so overlapping
// rects cannot cause duplicate work. Cached geometry bounds are
// preferred over an item's own reported bounds; they are tighter.
func (e *Engine) RenderChanged(items []Item, dirty []annotate.Rect) {
	regions := mergeDirty(dirty)
	if len(regions) == 0 {
		return
	}

	for _, item := range sortedByZ(items) {
		bounds, ok := e.cache.Bounds(item.ID())
		if !ok {
			bounds = item.Bounds()
		}
		if intersectsAny(bounds, regions) {
			e.Render(item)
		}
	}
}

// Render brings one item's draw objects up to date. When the item's
// content-version hash matches the cache, the cached geometry is
// reused and only pooled draw objects are re-attached; otherwise the
// geometry is rebuilt. Items whose geometry cannot be built (zero-size
// shapes, zero-length arrows) render nothing and leave no cache entry,
// so the next render retries.
func (e *Engine) Render(item Item) {
	if item == nil {
		return
	}
	id := item.ID()

	if !item.Visible() {
		e.detach(id)
		return
	}

	hash := hashItem(item)
	entry, ok := e.cache.Lookup(id, hash)
	if !ok {
		annotate.Logger().Debug("rebuilding annotation geometry",
			"engine", e.name, "id", id, "kind", item.Kind().String())
		built, buildOK := e.build(item, hash)
		if !buildOK {
			annotate.Logger().Warn("skipping annotation with degenerate geometry",
				"engine", e.name, "id", id, "kind", item.Kind().String())
			e.detach(id)
			e.cache.Remove(id)
			return
		}
		e.cache.Store(id, built)
		entry = built
	}

	e.attach(item, entry)
}

// RemoveRender detaches the item's draw objects, recycles them, and
// drops the cache entry. The item is logically gone, so the entry
// goes with it even if the geometry was still valid. Calling
// RemoveRender for an item that was never rendered is a no-op.
func (e *Engine) RemoveRender(item Item) {
	if item == nil {
		return
	}
	e.detach(item.ID())
	e.cache.Remove(item.ID())
}

// Clear empties the canvas and all caches. The draw-object pool keeps
// its free list so a following rebuild allocates nothing.
func (e *Engine) Clear() {
	for id := range e.attached {
		e.detach(id)
	}
	e.cache.Clear()
}

// build constructs the cache entry for an item, dispatching to the
// appropriate shape builder.
func (e *Engine) build(item Item, hash uint64) (*cacheEntry, bool) {
	style := item.Style()

	switch item.Kind() {
	case KindArrow:
		arrow, ok := item.(ArrowItem)
		if !ok {
			return nil, false
		}
		start, end, trail := arrow.Arrow()
		result, ok := annotate.BuildArrow(annotate.ArrowSpec{
			Start:        start,
			End:          end,
			Trail:        trail,
			StrokeWeight: style.StrokeWidth,
			Color:        withOpacity(style.Stroke, style.Opacity),
		})
		if !ok || result.Outline.HasNaN() {
			return nil, false
		}
		bounds := result.Outline.Bounds()
		return &cacheEntry{
			hash:         hash,
			geometry:     result.Outline,
			bounds:       bounds.Union(bounds.Translate(result.ShadowOffset)),
			fill:         result.Fill,
			shadowFill:   result.ShadowFill,
			shadowOffset: result.ShadowOffset,
			hasShadow:    true,
		}, true

	case KindRect, KindEllipse:
		boxItem, ok := item.(BoxItem)
		if !ok {
			return nil, false
		}
		box := boxItem.Box()
		var outline *annotate.Path
		if item.Kind() == KindRect {
			outline, ok = annotate.RectOutline(box)
		} else {
			outline, ok = annotate.EllipseOutline(box)
		}
		if !ok || outline.HasNaN() {
			return nil, false
		}
		entry := &cacheEntry{
			hash:        hash,
			geometry:    outline,
			bounds:      box.Inflate(style.StrokeWidth / 2),
			stroke:      annotate.Solid(withOpacity(style.Stroke, style.Opacity)),
			strokeWidth: style.StrokeWidth,
		}
		if style.Filled {
			entry.fill = annotate.Solid(withOpacity(style.Fill, style.Opacity))
		}
		return entry, true
	}
	return nil, false
}

// attach replaces the item's draw objects with fresh pooled ones
// carrying the cached geometry. Attach order within one item is
// shadow, body, then adornments, all at the item's z.
func (e *Engine) attach(item Item, entry *cacheEntry) {
	id := item.ID()
	z := item.ZIndex()
	e.detach(id)

	var objs []*DrawObject
	add := func(obj *DrawObject) {
		obj.Z = z
		e.canvas.Attach(obj, z)
		objs = append(objs, obj)
	}

	if e.showShadows && entry.hasShadow {
		shadow := e.pool.Get()
		shadow.Geometry = entry.geometry
		shadow.Fill = entry.shadowFill
		shadow.Offset = entry.shadowOffset
		add(shadow)
	}

	body := e.pool.Get()
	body.Geometry = entry.geometry
	body.Fill = entry.fill
	body.Stroke = entry.stroke
	body.StrokeWidth = entry.strokeWidth
	add(body)

	if e.showHandles && item.Selection() == Selected {
		outline := e.pool.Get()
		outline.Geometry = dashedOutline(entry.bounds)
		outline.Stroke = annotate.Solid(handleStroke)
		outline.StrokeWidth = 1
		add(outline)

		handles := e.pool.Get()
		handles.Geometry = handlePath(entry.bounds)
		handles.Fill = annotate.Solid(handleFill)
		handles.Stroke = annotate.Solid(handleStroke)
		handles.StrokeWidth = 1
		add(handles)
	}

	e.attached[id] = objs
}

// detach removes and recycles the item's draw objects.
func (e *Engine) detach(id uint64) {
	for _, obj := range e.attached[id] {
		e.canvas.Detach(obj)
		e.pool.Put(obj)
	}
	delete(e.attached, id)
}

// sortedByZ returns the items ordered by ascending z-index, stable for
// equal z.
func sortedByZ(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex() < sorted[j].ZIndex()
	})
	return sorted
}

// withOpacity scales a color's alpha by the item opacity.
func withOpacity(c annotate.RGBA, opacity float64) annotate.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return c.WithAlpha(c.A * opacity)
}
