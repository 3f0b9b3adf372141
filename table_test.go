package sapling

import "testing"

func TestTable_PrefSizeSingleCell(t *testing.T) {
	tbl := NewTable()
	tbl.Add(newTestActor("a", 80, 40))

	if got := tbl.PrefWidth(); got != 80 {
		t.Errorf("PrefWidth = %v, want 80", got)
	}
	if got := tbl.PrefHeight(); got != 40 {
		t.Errorf("PrefHeight = %v, want 40", got)
	}
}

func TestTable_PrefSizeWithPadding(t *testing.T) {
	tbl := NewTable()
	tbl.Add(newTestActor("a", 80, 40)).Pad(FixedOf(5))

	if got := tbl.PrefWidth(); got != 90 {
		t.Errorf("PrefWidth = %v, want 90 (80 + 5 pad each side)", got)
	}
	if got := tbl.PrefHeight(); got != 50 {
		t.Errorf("PrefHeight = %v, want 50", got)
	}
}

func TestTable_TablePadding(t *testing.T) {
	tbl := NewTable()
	tbl.SetPad(FixedOf(10))
	tbl.Add(newTestActor("a", 80, 40))

	if got := tbl.PrefWidth(); got != 100 {
		t.Errorf("PrefWidth = %v, want 100", got)
	}
	if got := tbl.PadTop(); got != 10 {
		t.Errorf("PadTop = %v, want 10", got)
	}
}

func TestTable_RowsAndColumns(t *testing.T) {
	tbl := NewTable()
	c00 := tbl.Add(newTestActor("a", 10, 10))
	c01 := tbl.Add(newTestActor("b", 10, 10))
	tbl.NextRow()
	c10 := tbl.Add(newTestActor("c", 10, 10))

	if c00.Row() != 0 || c00.Column() != 0 {
		t.Errorf("first cell at (%d,%d), want (0,0)", c00.Row(), c00.Column())
	}
	if c01.Row() != 0 || c01.Column() != 1 {
		t.Errorf("second cell at (%d,%d), want (0,1)", c01.Row(), c01.Column())
	}
	if c10.Row() != 1 || c10.Column() != 0 {
		t.Errorf("third cell at (%d,%d), want (1,0)", c10.Row(), c10.Column())
	}
}

func TestTable_GridPrefSize(t *testing.T) {
	tbl := NewTable()
	tbl.Add(newTestActor("a", 30, 10))
	tbl.Add(newTestActor("b", 50, 20))
	tbl.NextRow()
	tbl.Add(newTestActor("c", 40, 15))

	// Column widths: max(30,40)=40 and 50. Row heights: max(10,20)=20 and 15.
	if got := tbl.PrefWidth(); got != 90 {
		t.Errorf("PrefWidth = %v, want 90", got)
	}
	if got := tbl.PrefHeight(); got != 35 {
		t.Errorf("PrefHeight = %v, want 35", got)
	}
}

func TestTable_LayoutPositionsActors(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 30, 10)
	b := newTestActor("b", 50, 20)
	tbl.Add(a)
	tbl.Add(b)
	tbl.SetSize(tbl.PrefWidth(), tbl.PrefHeight())
	tbl.Validate()

	if a.X != 0 {
		t.Errorf("a.X = %v, want 0", a.X)
	}
	// a centers vertically in the 20-high row.
	if a.Y != 5 {
		t.Errorf("a.Y = %v, want 5", a.Y)
	}
	if b.X != 30 {
		t.Errorf("b.X = %v, want 30 (after the first column)", b.X)
	}
}

func TestTable_ExpandDistributesExtraSpace(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 50, 20)
	tbl.Add(a).Expand().Fill()
	tbl.SetSize(200, 100)
	tbl.Validate()

	if a.Width != 200 || a.Height != 100 {
		t.Errorf("filled actor = %vx%v, want 200x100", a.Width, a.Height)
	}
}

func TestTable_ExpandWithoutFillCenters(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 50, 20)
	tbl.Add(a).Expand()
	tbl.SetSize(200, 100)
	tbl.Validate()

	if a.Width != 50 || a.Height != 20 {
		t.Errorf("unfilled actor resized to %vx%v", a.Width, a.Height)
	}
	if a.X != 75 || a.Y != 40 {
		t.Errorf("actor at (%v,%v), want centered (75,40)", a.X, a.Y)
	}
}

func TestTable_CellAlign(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 50, 20)
	tbl.Add(a).Expand().Align(AlignLeft | AlignTop)
	tbl.SetSize(200, 100)
	tbl.Validate()

	if a.X != 0 || a.Y != 0 {
		t.Errorf("actor at (%v,%v), want (0,0) for left/top align", a.X, a.Y)
	}
}

func TestTable_CellSizeOverride(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 10, 10)
	tbl.Add(a).Size(FixedOf(60), FixedOf(30))

	if got := tbl.PrefWidth(); got != 60 {
		t.Errorf("PrefWidth = %v, want 60", got)
	}
	if got := tbl.MinHeight(); got != 30 {
		t.Errorf("MinHeight = %v, want 30", got)
	}
}

func TestTable_GetCell(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 10, 10)
	tbl.Add(a)
	other := newTestActor("other", 10, 10)

	if tbl.GetCell(a) == nil {
		t.Error("GetCell returned nil for a cell member")
	}
	if tbl.GetCell(other) != nil {
		t.Error("GetCell returned a cell for a non-member")
	}
	if tbl.GetCell(nil) != nil {
		t.Error("GetCell(nil) should return nil")
	}
}

func TestTable_ClearCells(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 10, 10)
	tbl.Add(a)
	tbl.ClearCells()

	if len(tbl.Cells()) != 0 {
		t.Errorf("cells = %d, want 0", len(tbl.Cells()))
	}
	if tbl.NumChildren() != 0 {
		t.Errorf("children = %d, want 0", tbl.NumChildren())
	}
	if a.Parent() != nil {
		t.Error("cleared actor still parented")
	}
}

func TestTable_NestedLayouterValidated(t *testing.T) {
	outer := NewTable()
	inner := NewTable()
	content := newTestActor("content", 40, 20)
	inner.Add(content)
	outer.Add(inner).Fill()
	outer.SetSize(outer.PrefWidth(), outer.PrefHeight())
	outer.Validate()

	// The inner table was laid out as part of the outer validation.
	if content.Width != 40 || content.Height != 20 {
		t.Errorf("inner content = %vx%v, want 40x20", content.Width, content.Height)
	}
	if inner.Width != 40 {
		t.Errorf("inner table width = %v, want 40", inner.Width)
	}
}

func TestTable_PercentPadding(t *testing.T) {
	tbl := NewTable()
	a := newTestActor("a", 100, 50)
	// Pad by 10% of the cell actor's own width.
	tbl.Add(a).PadLeft(PercentWidth(0.1))

	if got := tbl.PrefWidth(); got != 110 {
		t.Errorf("PrefWidth = %v, want 110 (100 + 10%% pad)", got)
	}
}

func TestTable_InvalidateHierarchy(t *testing.T) {
	outer := NewTable()
	inner := NewTable()
	inner.Add(newTestActor("a", 10, 10))
	outer.Add(inner)
	outer.SetSize(outer.PrefWidth(), outer.PrefHeight())
	outer.Validate()

	if outer.needsLayout {
		t.Fatal("outer still needs layout after Validate")
	}
	inner.InvalidateHierarchy()
	if !outer.needsLayout {
		t.Error("InvalidateHierarchy did not invalidate the ancestor table")
	}
}

func TestTable_BackgroundRaisesMinAndPref(t *testing.T) {
	tbl := NewTable()
	tbl.Add(newTestActor("a", 40, 20))
	tbl.SetBackground(&RegionDrawable{Region: TextureRegion{OriginalW: 90, OriginalH: 60}})

	if got := tbl.MinWidth(); got != 90 {
		t.Errorf("MinWidth = %v, want 90", got)
	}
	if got := tbl.PrefWidth(); got != 90 {
		t.Errorf("PrefWidth = %v, want 90", got)
	}
	if got := tbl.PrefHeight(); got != 60 {
		t.Errorf("PrefHeight = %v, want 60", got)
	}
}
