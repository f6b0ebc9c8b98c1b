// Package render turns annotation items into canvas draw objects,
// caching built geometry per item and redrawing only what changed.
//
// The engine owns a geometry cache keyed by item identity and
// validated by a content-version hash, plus a free list of reusable
// draw objects. Both are private to the engine instance; two engines
// never share state. All methods are synchronous and single-threaded:
// the caller (typically a UI event loop) must serialize item mutation
// against render calls.
package render
