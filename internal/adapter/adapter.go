package adapter

import (
	"fmt"

	"github.com/rs/zerolog"
)

// RowBinder creates and populates the views of NORMAL slots
type RowBinder[T, V any] interface {
	CreateRow(ctx CreateContext) V
	BindRow(h *Holder[T, V], index int, item T)
}

// Observer is the host surface. The adapter calls it after decoration
// changes; data changes are reported by the data owner.
type Observer interface {
	ItemInserted(pos int)
	DataSetChanged()
}

type options struct {
	logger zerolog.Logger
}

// Option configures an Adapter
type Option func(*options)

// WithLogger sets the logger used for decoration and layout events
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Adapter exposes data plus decorations as a single slot index space.
// It is driven from one goroutine; it holds no derived state.
type Adapter[T, V any] struct {
	data      Source[T]
	rows      RowBinder[T, V]
	decor     decorations[V]
	listener  ClickListener[T]
	observers []Observer
	log       zerolog.Logger
}

// New creates an adapter over data. Both data and rows are required.
func New[T, V any](data Source[T], rows RowBinder[T, V], opts ...Option) *Adapter[T, V] {
	if data == nil {
		panic("adapter: nil data source")
	}
	if rows == nil {
		panic("adapter: nil row binder")
	}

	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Adapter[T, V]{
		data: data,
		rows: rows,
		log:  o.logger.With().Str("component", "adapter").Logger(),
	}
}

// Count returns the number of slots
func (a *Adapter[T, V]) Count() int {
	n := a.data.Len()
	if n == 0 && a.decor.empty.set {
		return 1
	}
	if a.decor.header.set {
		n++
	}
	if a.decor.footer.set {
		n++
	}
	return n
}

// Kind classifies slot. The empty override wins over header and footer.
func (a *Adapter[T, V]) Kind(slot int) Kind {
	n := a.data.Len()
	if a.decor.empty.set && n == 0 {
		return KindEmpty
	}

	if !a.decor.header.set {
		if a.decor.footer.set && slot == n {
			return KindFooter
		}
		return KindNormal
	}

	if slot == 0 {
		return KindHeader
	}
	if a.decor.footer.set && slot == n+1 {
		return KindFooter
	}
	return KindNormal
}

// DataIndex translates a NORMAL slot to its index in the data sequence.
// It panics for slots outside [0, Count()) and for any other kind of slot.
func (a *Adapter[T, V]) DataIndex(slot int) int {
	if n := a.Count(); slot < 0 || slot >= n {
		panic(fmt.Sprintf("adapter: slot %d out of range [0, %d)", slot, n))
	}
	if k := a.Kind(slot); k != KindNormal {
		panic(fmt.Sprintf("adapter: slot %d is %s, not a NORMAL slot", slot, k))
	}
	return slot - a.offset()
}

// SlotOf is the inverse of DataIndex
func (a *Adapter[T, V]) SlotOf(index int) int {
	if index < 0 || index >= a.data.Len() {
		panic(fmt.Sprintf("adapter: data index %d out of range [0, %d)", index, a.data.Len()))
	}
	return index + a.offset()
}

func (a *Adapter[T, V]) offset() int {
	if a.decor.header.set {
		return 1
	}
	return 0
}

// CreateHolder builds a holder for a slot of kind k. Decoration kinds wrap
// the decoration view directly; when that decoration has since been removed
// the row factory is used instead.
func (a *Adapter[T, V]) CreateHolder(k Kind, ctx CreateContext) *Holder[T, V] {
	ctx.Kind = k

	var d *decoration[V]
	switch k {
	case KindEmpty:
		d = &a.decor.empty
	case KindHeader:
		d = &a.decor.header
	case KindFooter:
		d = &a.decor.footer
	}
	if d != nil && d.set {
		return &Holder[T, V]{View: d.view, Kind: k}
	}

	return &Holder[T, V]{View: a.rows.CreateRow(ctx), Kind: KindNormal}
}

// BindHolder binds h to slot. Decoration slots are never rebound.
func (a *Adapter[T, V]) BindHolder(h *Holder[T, V], slot int) {
	h.SetLayoutPosition(slot)
	if a.Kind(slot) != KindNormal {
		return
	}

	index := a.DataIndex(slot)
	item := a.data.At(index)
	a.rows.BindRow(h, index, item)

	if a.listener != nil {
		h.click = &clickBinding[T]{listener: a.listener, index: index, item: item}
	}
}

// HolderRecycled drops the click handler of a holder returned to a pool
func (a *Adapter[T, V]) HolderRecycled(h *Holder[T, V]) {
	h.clearClick()
}

// SetClickListener registers l for activations of NORMAL slots. It takes
// effect on the next bind of each holder.
func (a *Adapter[T, V]) SetClickListener(l ClickListener[T]) {
	a.listener = l
}

// RegisterObserver adds o to the notified observers
func (a *Adapter[T, V]) RegisterObserver(o Observer) {
	a.observers = append(a.observers, o)
}

// UnregisterObserver removes o
func (a *Adapter[T, V]) UnregisterObserver(o Observer) {
	for i, obs := range a.observers {
		if obs == o {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

// NotifyDataSetChanged tells observers that every slot may have changed.
// Data owners call it after mutating the sequence.
func (a *Adapter[T, V]) NotifyDataSetChanged() {
	a.notifyChanged()
}

// NotifyItemInserted tells observers that one slot was inserted at pos
func (a *Adapter[T, V]) NotifyItemInserted(pos int) {
	a.notifyInserted(pos)
}

func (a *Adapter[T, V]) notifyInserted(pos int) {
	for _, o := range a.observers {
		o.ItemInserted(pos)
	}
}

func (a *Adapter[T, V]) notifyChanged() {
	for _, o := range a.observers {
		o.DataSetChanged()
	}
}
