package adapter

import (
	"testing"

	"github.com/golang/mock/gomock"
)

func TestSpanSizeGridHeaderOnly(t *testing.T) {
	a, _, _ := newTestAdapter(5, true, false, false)

	if got := a.SpanSize(0, 3); got != 3 {
		t.Errorf("SpanSize(0, 3) = %d, want 3", got)
	}
	for slot := 1; slot <= 5; slot++ {
		if got := a.SpanSize(slot, 3); got != 1 {
			t.Errorf("SpanSize(%d, 3) = %d, want 1", slot, got)
		}
	}
}

func TestSpanSizeEmptySlot(t *testing.T) {
	a, _, _ := newTestAdapter(0, true, true, true)

	if got := a.SpanSize(0, 4); got != 1 {
		t.Errorf("SpanSize(empty slot, 4) = %d, want 1", got)
	}
}

func TestAttachedToGridRegistersLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _, _ := newTestAdapter(5, true, true, false)

	spanCount := 3
	var lookup SpanSizeLookup
	grid := NewMockSpanLookupSetter(ctrl)
	grid.EXPECT().SpanCount().DoAndReturn(func() int { return spanCount }).AnyTimes()
	grid.EXPECT().SetSpanSizeLookup(gomock.Any()).Do(func(l SpanSizeLookup) {
		lookup = l
	})

	a.AttachedTo(grid)
	if lookup == nil {
		t.Fatal("AttachedTo(grid) did not register a span lookup")
	}

	if got := lookup(0); got != 3 {
		t.Errorf("lookup(0) = %d, want 3", got)
	}
	if got := lookup(6); got != 3 {
		t.Errorf("lookup(footer) = %d, want 3", got)
	}
	if got := lookup(2); got != 1 {
		t.Errorf("lookup(2) = %d, want 1", got)
	}

	// The lookup follows later decoration and span count changes.
	a.RemoveHeader()
	spanCount = 4
	if got := lookup(0); got != 1 {
		t.Errorf("lookup(0) after RemoveHeader = %d, want 1", got)
	}
	if got := lookup(5); got != 4 {
		t.Errorf("lookup(footer) after RemoveHeader = %d, want 4", got)
	}
}

func TestAttachedToNonGridIsNoop(t *testing.T) {
	a, _, _ := newTestAdapter(1, false, false, false)
	a.AttachedTo(struct{}{})
	a.AttachedTo(nil)
}

func TestHolderAttachedStaggeredBothDecorations(t *testing.T) {
	a, _, _ := newTestAdapter(3, true, true, false)

	attach := func(slot int) *StaggeredParams {
		h := a.CreateHolder(a.Kind(slot), CreateContext{})
		h.Params = &StaggeredParams{}
		a.BindHolder(h, slot)
		a.HolderAttached(h)
		return h.Params.(*StaggeredParams)
	}

	if p := attach(0); !p.FullSpan {
		t.Error("header holder FullSpan = false, want true")
	}
	if p := attach(4); !p.FullSpan {
		t.Error("footer holder FullSpan = false, want true")
	}
	for slot := 1; slot <= 3; slot++ {
		if p := attach(slot); p.FullSpan {
			t.Errorf("normal holder at %d FullSpan = true, want false", slot)
		}
	}
}

func TestHolderAttachedClearsReusedHolder(t *testing.T) {
	a, _, _ := newTestAdapter(3, false, true, false)

	h := a.CreateHolder(KindFooter, CreateContext{})
	h.Params = &StaggeredParams{}
	a.BindHolder(h, 3)
	a.HolderAttached(h)
	if !h.Params.(*StaggeredParams).FullSpan {
		t.Fatal("footer holder FullSpan = false, want true")
	}

	a.BindHolder(h, 1)
	a.HolderAttached(h)
	if h.Params.(*StaggeredParams).FullSpan {
		t.Error("holder moved to a NORMAL slot kept FullSpan")
	}
}

func TestHolderAttachedIgnoresOtherParams(t *testing.T) {
	a, _, _ := newTestAdapter(1, true, false, false)

	h := a.CreateHolder(KindHeader, CreateContext{})
	h.Params = "grid"
	a.HolderAttached(h)
	if h.Params != "grid" {
		t.Errorf("Params = %v, want untouched", h.Params)
	}

	var nilParams *StaggeredParams
	h.Params = nilParams
	a.HolderAttached(h)
}
