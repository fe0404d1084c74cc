package adapter

// CreateContext describes the container a holder is created for
type CreateContext struct {
	Kind  Kind
	Width int
}

// StaggeredParams are the layout params a staggered-grid layout attaches to
// its holders. FullSpan makes the holder occupy the whole row.
type StaggeredParams struct {
	FullSpan bool
}

// ClickListener receives activations of NORMAL slots
type ClickListener[T any] func(index int, item T)

// clickBinding is the (index, item) pair captured when a NORMAL holder
// was last bound.
type clickBinding[T any] struct {
	listener ClickListener[T]
	index    int
	item     T
}

// Holder carries the view rendered for one slot. Decoration holders wrap
// the decoration token itself; NORMAL holders wrap whatever the RowBinder
// created.
type Holder[T, V any] struct {
	View V
	Kind Kind

	// Params is owned by the layout; the adapter only inspects
	// *StaggeredParams.
	Params any

	position int
	click    *clickBinding[T]
}

// LayoutPosition returns the slot this holder was last laid out at
func (h *Holder[T, V]) LayoutPosition() int {
	return h.position
}

// SetLayoutPosition is called by the host each time it places the holder
func (h *Holder[T, V]) SetLayoutPosition(slot int) {
	h.position = slot
}

// Clickable reports whether a click handler is installed
func (h *Holder[T, V]) Clickable() bool {
	return h.click != nil && h.click.listener != nil
}

// Click invokes the installed handler with the index and item captured at
// bind time. It returns false when no handler is installed.
func (h *Holder[T, V]) Click() bool {
	if !h.Clickable() {
		return false
	}
	h.click.listener(h.click.index, h.click.item)
	return true
}

// clearClick drops any handler, used when a holder is recycled
func (h *Holder[T, V]) clearClick() {
	h.click = nil
}
