package adapter

// SpanSizeLookup returns the number of grid columns a slot occupies
type SpanSizeLookup func(slot int) int

// SpanLookupSetter is implemented by grid-style layouts
type SpanLookupSetter interface {
	SpanCount() int
	SetSpanSizeLookup(lookup SpanSizeLookup)
}

// SpanSize returns spanCount for header and footer slots and 1 otherwise
func (a *Adapter[T, V]) SpanSize(slot, spanCount int) int {
	switch a.Kind(slot) {
	case KindHeader, KindFooter:
		return spanCount
	default:
		return 1
	}
}

// AttachedTo is called when the adapter is attached to a layout. Grid
// layouts get a span lookup that reads the layout's current span count on
// every call.
func (a *Adapter[T, V]) AttachedTo(layout any) {
	grid, ok := layout.(SpanLookupSetter)
	if !ok {
		return
	}
	a.log.Debug().Int("spanCount", grid.SpanCount()).Msg("attached to grid layout")
	grid.SetSpanSizeLookup(func(slot int) int {
		return a.SpanSize(slot, grid.SpanCount())
	})
}

// HolderAttached is called each time the host attaches h. For staggered
// layouts it marks header and footer holders as full span. Exactly one
// classification is made per holder.
func (a *Adapter[T, V]) HolderAttached(h *Holder[T, V]) {
	p, ok := h.Params.(*StaggeredParams)
	if !ok || p == nil {
		return
	}
	switch a.Kind(h.LayoutPosition()) {
	case KindHeader, KindFooter:
		p.FullSpan = true
	default:
		p.FullSpan = false
	}
}
