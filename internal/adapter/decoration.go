package adapter

// decoration is one optional decoration slot
type decoration[V any] struct {
	view V
	set  bool
}

func (d *decoration[V]) put(v V) {
	d.view = v
	d.set = true
}

func (d *decoration[V]) clear() {
	var zero V
	d.view = zero
	d.set = false
}

// decorations holds at most one header, footer and empty view
type decorations[V any] struct {
	header decoration[V]
	footer decoration[V]
	empty  decoration[V]
}

// SetHeader installs v as the header and reports an insertion at slot 0.
// Setting a header that is already present replaces it.
func (a *Adapter[T, V]) SetHeader(v V) {
	a.decor.header.put(v)
	a.log.Debug().Str("decoration", "header").Int("pos", 0).Msg("decoration set")
	a.notifyInserted(0)
}

// SetFooter installs v as the footer and reports an insertion at the tail
func (a *Adapter[T, V]) SetFooter(v V) {
	a.decor.footer.put(v)
	pos := a.data.Len()
	if a.decor.header.set {
		pos++
	}
	a.log.Debug().Str("decoration", "footer").Int("pos", pos).Msg("decoration set")
	a.notifyInserted(pos)
}

// SetEmpty installs v as the placeholder shown while the data is empty
func (a *Adapter[T, V]) SetEmpty(v V) {
	a.decor.empty.put(v)
	a.log.Debug().Str("decoration", "empty").Int("pos", 0).Msg("decoration set")
	a.notifyInserted(0)
}

// RemoveHeader drops the header. Observers get a full refresh because the
// other slots shift.
func (a *Adapter[T, V]) RemoveHeader() {
	a.decor.header.clear()
	a.log.Debug().Str("decoration", "header").Msg("decoration removed")
	a.notifyChanged()
}

// RemoveFooter drops the footer
func (a *Adapter[T, V]) RemoveFooter() {
	a.decor.footer.clear()
	a.log.Debug().Str("decoration", "footer").Msg("decoration removed")
	a.notifyChanged()
}

// RemoveEmpty drops the empty-state placeholder
func (a *Adapter[T, V]) RemoveEmpty() {
	a.decor.empty.clear()
	a.log.Debug().Str("decoration", "empty").Msg("decoration removed")
	a.notifyChanged()
}

// Header returns the header view, if any
func (a *Adapter[T, V]) Header() (V, bool) {
	return a.decor.header.view, a.decor.header.set
}

// Footer returns the footer view, if any
func (a *Adapter[T, V]) Footer() (V, bool) {
	return a.decor.footer.view, a.decor.footer.set
}

// Empty returns the empty-state view, if any
func (a *Adapter[T, V]) Empty() (V, bool) {
	return a.decor.empty.view, a.decor.empty.set
}
