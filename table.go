package sapling

import "github.com/hajimehoshi/ebiten/v2"

// Cell wraps one actor managed by a Table: its grid position, padding,
// sizing overrides, and expand/fill/align behavior. Cell setters return the
// cell so calls chain.
type Cell struct {
	actor       Actor
	table       *Table
	row, column int

	padTop, padLeft, padBottom, padRight Value
	minWidth, minHeight                  Value // nil = ask the actor
	prefWidth, prefHeight                Value // nil = ask the actor
	expandX, expandY                     bool
	fillX, fillY                         bool
	align                                Align
}

// Actor returns the wrapped actor.
func (c *Cell) Actor() Actor { return c.actor }

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Column returns the cell's column index.
func (c *Cell) Column() int { return c.column }

// Pad sets the same padding Value on all four sides.
func (c *Cell) Pad(v Value) *Cell {
	c.padTop, c.padLeft, c.padBottom, c.padRight = v, v, v, v
	c.table.Invalidate()
	return c
}

// PadTop sets the top padding.
func (c *Cell) PadTop(v Value) *Cell { c.padTop = v; c.table.Invalidate(); return c }

// PadLeft sets the left padding.
func (c *Cell) PadLeft(v Value) *Cell { c.padLeft = v; c.table.Invalidate(); return c }

// PadBottom sets the bottom padding.
func (c *Cell) PadBottom(v Value) *Cell { c.padBottom = v; c.table.Invalidate(); return c }

// PadRight sets the right padding.
func (c *Cell) PadRight(v Value) *Cell { c.padRight = v; c.table.Invalidate(); return c }

// Width sets both the minimum and preferred width of the cell.
func (c *Cell) Width(v Value) *Cell {
	c.minWidth, c.prefWidth = v, v
	c.table.Invalidate()
	return c
}

// Height sets both the minimum and preferred height of the cell.
func (c *Cell) Height(v Value) *Cell {
	c.minHeight, c.prefHeight = v, v
	c.table.Invalidate()
	return c
}

// Size sets both dimensions of the cell.
func (c *Cell) Size(w, h Value) *Cell { return c.Width(w).Height(h) }

// Expand makes the cell's column and row absorb extra table space.
func (c *Cell) Expand() *Cell {
	c.expandX, c.expandY = true, true
	c.table.Invalidate()
	return c
}

// ExpandX makes the cell's column absorb extra horizontal space.
func (c *Cell) ExpandX() *Cell { c.expandX = true; c.table.Invalidate(); return c }

// ExpandY makes the cell's row absorb extra vertical space.
func (c *Cell) ExpandY() *Cell { c.expandY = true; c.table.Invalidate(); return c }

// Fill sizes the actor to the full cell area on both axes.
func (c *Cell) Fill() *Cell {
	c.fillX, c.fillY = true, true
	c.table.Invalidate()
	return c
}

// FillX sizes the actor to the cell width.
func (c *Cell) FillX() *Cell { c.fillX = true; c.table.Invalidate(); return c }

// FillY sizes the actor to the cell height.
func (c *Cell) FillY() *Cell { c.fillY = true; c.table.Invalidate(); return c }

// Align positions the actor within the cell when it doesn't fill it.
func (c *Cell) Align(a Align) *Cell { c.align = a; c.table.Invalidate(); return c }

// padVal evaluates a pad Value with the cell's actor as context.
func (c *Cell) padVal(v Value) float64 {
	if v == nil {
		return 0
	}
	return v.Get(c.actor)
}

// cellMinWidth returns the cell's effective minimum content width.
func (c *Cell) cellMinWidth() float64 {
	if c.minWidth != nil {
		return c.minWidth.Get(c.actor)
	}
	if l, ok := c.actor.(Layouter); ok {
		return l.MinWidth()
	}
	return c.actor.Base().Width
}

func (c *Cell) cellMinHeight() float64 {
	if c.minHeight != nil {
		return c.minHeight.Get(c.actor)
	}
	if l, ok := c.actor.(Layouter); ok {
		return l.MinHeight()
	}
	return c.actor.Base().Height
}

func (c *Cell) cellPrefWidth() float64 {
	pref := 0.0
	if c.prefWidth != nil {
		pref = c.prefWidth.Get(c.actor)
	} else if l, ok := c.actor.(Layouter); ok {
		pref = l.PrefWidth()
	} else {
		pref = c.actor.Base().Width
	}
	if min := c.cellMinWidth(); pref < min {
		pref = min
	}
	return pref
}

func (c *Cell) cellPrefHeight() float64 {
	pref := 0.0
	if c.prefHeight != nil {
		pref = c.prefHeight.Get(c.actor)
	} else if l, ok := c.actor.(Layouter); ok {
		pref = l.PrefHeight()
	} else {
		pref = c.actor.Base().Height
	}
	if min := c.cellMinHeight(); pref < min {
		pref = min
	}
	return pref
}

// Table arranges child actors in a grid of cells with Value-typed padding
// and an optional background drawable. It is deliberately small: rows and
// columns, expand/fill, padding, alignment. No spanning, no uniform sizing.
type Table struct {
	Group
	cells         []*Cell
	currentColumn int
	currentRow    int
	rowPending    bool

	padTop, padLeft, padBottom, padRight Value
	background                           Drawable

	needsLayout  bool
	sizeValid    bool
	minW, minH   float64
	prefW, prefH float64

	colMin, colPref []float64
	rowMin, rowPref []float64
}

// NewTable creates an empty table. Tables default to TouchableChildrenOnly:
// the table itself is transparent to hits unless a subtype opts in.
func NewTable() *Table {
	t := &Table{}
	t.initTable("table", t)
	return t
}

// initTable initializes the embedded actor state. Subtypes embedding Table
// call this with their own identity.
func (t *Table) initTable(name string, self Actor) {
	t.initActor(name, self)
	t.Touchable = TouchableChildrenOnly
	t.padTop, t.padLeft, t.padBottom, t.padRight = Zero, Zero, Zero, Zero
	t.needsLayout = true
}

// Add appends an actor to the current row and returns its cell.
func (t *Table) Add(a Actor) *Cell {
	if t.rowPending {
		t.rowPending = false
		t.currentRow++
		t.currentColumn = 0
	}
	cell := &Cell{
		actor:  a,
		table:  t,
		row:    t.currentRow,
		column: t.currentColumn,
	}
	t.currentColumn++
	t.cells = append(t.cells, cell)
	t.AddActor(a)
	t.Invalidate()
	return cell
}

// NextRow ends the current row; the next Add starts a new one.
func (t *Table) NextRow() {
	t.rowPending = true
}

// GetCell returns the cell wrapping the given actor, or nil if the actor is
// not a cell member of this table.
func (t *Table) GetCell(a Actor) *Cell {
	if a == nil {
		return nil
	}
	b := a.Base()
	for _, c := range t.cells {
		if c.actor.Base() == b {
			return c
		}
	}
	return nil
}

// Cells returns the table's cells. The returned slice MUST NOT be mutated.
func (t *Table) Cells() []*Cell { return t.cells }

// ClearCells removes all cells and their actors.
func (t *Table) ClearCells() {
	for _, c := range t.cells {
		t.RemoveActor(c.actor)
	}
	t.cells = t.cells[:0]
	t.currentColumn, t.currentRow = 0, 0
	t.rowPending = false
	t.Invalidate()
}

// SetBackground sets the table's background drawable (nil to clear).
func (t *Table) SetBackground(d Drawable) {
	t.background = d
	t.Invalidate()
}

// Background returns the table's background drawable, or nil.
func (t *Table) Background() Drawable { return t.background }

// SetPad sets the same padding Value on all four table edges.
func (t *Table) SetPad(v Value) {
	t.padTop, t.padLeft, t.padBottom, t.padRight = v, v, v, v
	t.Invalidate()
}

// SetPadTop sets the table's top padding.
func (t *Table) SetPadTop(v Value) { t.padTop = v; t.Invalidate() }

// SetPadLeft sets the table's left padding.
func (t *Table) SetPadLeft(v Value) { t.padLeft = v; t.Invalidate() }

// SetPadBottom sets the table's bottom padding.
func (t *Table) SetPadBottom(v Value) { t.padBottom = v; t.Invalidate() }

// SetPadRight sets the table's right padding.
func (t *Table) SetPadRight(v Value) { t.padRight = v; t.Invalidate() }

// PadTop evaluates the table's top padding.
func (t *Table) PadTop() float64 { return t.padTop.Get(t.self) }

// PadLeft evaluates the table's left padding.
func (t *Table) PadLeft() float64 { return t.padLeft.Get(t.self) }

// PadBottom evaluates the table's bottom padding.
func (t *Table) PadBottom() float64 { return t.padBottom.Get(t.self) }

// PadRight evaluates the table's right padding.
func (t *Table) PadRight() float64 { return t.padRight.Get(t.self) }

// --- Layouter ---

func (t *Table) Invalidate() {
	t.needsLayout = true
	t.sizeValid = false
}

func (t *Table) InvalidateHierarchy() {
	t.Invalidate()
	invalidateAncestors(t.self)
}

func (t *Table) Validate() {
	if t.needsLayout {
		t.layout()
	}
}

func (t *Table) Pack() {
	t.SetSize(t.PrefWidth(), t.PrefHeight())
	t.needsLayout = true
	t.Validate()
}

func (t *Table) MinWidth() float64 { t.computeSize(); return t.minW }

func (t *Table) MinHeight() float64 { t.computeSize(); return t.minH }

func (t *Table) PrefWidth() float64 { t.computeSize(); return t.prefW }

func (t *Table) PrefHeight() float64 { t.computeSize(); return t.prefH }

func (t *Table) MaxWidth() float64 { return 0 }

func (t *Table) MaxHeight() float64 { return 0 }

// computeSize fills the per-column and per-row size arrays and the table
// min/pref totals.
func (t *Table) computeSize() {
	if t.sizeValid {
		return
	}
	t.sizeValid = true

	columns, rows := 0, 0
	for _, c := range t.cells {
		if c.column+1 > columns {
			columns = c.column + 1
		}
		if c.row+1 > rows {
			rows = c.row + 1
		}
	}

	t.colMin = resizeFloats(t.colMin, columns)
	t.colPref = resizeFloats(t.colPref, columns)
	t.rowMin = resizeFloats(t.rowMin, rows)
	t.rowPref = resizeFloats(t.rowPref, rows)

	for _, c := range t.cells {
		padH := c.padVal(c.padLeft) + c.padVal(c.padRight)
		padV := c.padVal(c.padTop) + c.padVal(c.padBottom)
		if v := c.cellMinWidth() + padH; v > t.colMin[c.column] {
			t.colMin[c.column] = v
		}
		if v := c.cellPrefWidth() + padH; v > t.colPref[c.column] {
			t.colPref[c.column] = v
		}
		if v := c.cellMinHeight() + padV; v > t.rowMin[c.row] {
			t.rowMin[c.row] = v
		}
		if v := c.cellPrefHeight() + padV; v > t.rowPref[c.row] {
			t.rowPref[c.row] = v
		}
	}

	hPad := t.PadLeft() + t.PadRight()
	vPad := t.PadTop() + t.PadBottom()
	t.minW, t.minH = hPad, vPad
	t.prefW, t.prefH = hPad, vPad
	for i := range t.colMin {
		t.minW += t.colMin[i]
		t.prefW += t.colPref[i]
	}
	for i := range t.rowMin {
		t.minH += t.rowMin[i]
		t.prefH += t.rowPref[i]
	}
	if t.background != nil {
		if v := t.background.MinWidth(); v > t.minW {
			t.minW = v
		}
		if v := t.background.MinHeight(); v > t.minH {
			t.minH = v
		}
	}
	if t.prefW < t.minW {
		t.prefW = t.minW
	}
	if t.prefH < t.minH {
		t.prefH = t.minH
	}
}

// layout positions the cell actors within the table's current bounds.
func (t *Table) layout() {
	t.needsLayout = false
	t.computeSize()
	if len(t.cells) == 0 {
		return
	}

	columns := len(t.colPref)
	rows := len(t.rowPref)

	// Start from preferred sizes and hand extra space to expand columns/rows.
	colWidth := make([]float64, columns)
	copy(colWidth, t.colPref)
	rowHeight := make([]float64, rows)
	copy(rowHeight, t.rowPref)

	expandCols := make([]bool, columns)
	expandRows := make([]bool, rows)
	nExpandX, nExpandY := 0, 0
	for _, c := range t.cells {
		if c.expandX && !expandCols[c.column] {
			expandCols[c.column] = true
			nExpandX++
		}
		if c.expandY && !expandRows[c.row] {
			expandRows[c.row] = true
			nExpandY++
		}
	}

	if extra := t.Width - t.prefW; extra > 0 && nExpandX > 0 {
		share := extra / float64(nExpandX)
		for i := range colWidth {
			if expandCols[i] {
				colWidth[i] += share
			}
		}
	}
	if extra := t.Height - t.prefH; extra > 0 && nExpandY > 0 {
		share := extra / float64(nExpandY)
		for i := range rowHeight {
			if expandRows[i] {
				rowHeight[i] += share
			}
		}
	}

	colX := make([]float64, columns)
	x := t.PadLeft()
	for i := range colX {
		colX[i] = x
		x += colWidth[i]
	}
	rowY := make([]float64, rows)
	y := t.PadTop()
	for i := range rowY {
		rowY[i] = y
		y += rowHeight[i]
	}

	for _, c := range t.cells {
		padT := c.padVal(c.padTop)
		padL := c.padVal(c.padLeft)
		padB := c.padVal(c.padBottom)
		padR := c.padVal(c.padRight)
		spaceW := colWidth[c.column] - padL - padR
		spaceH := rowHeight[c.row] - padT - padB

		aw := c.cellPrefWidth()
		if c.fillX || aw > spaceW {
			aw = spaceW
		}
		ah := c.cellPrefHeight()
		if c.fillY || ah > spaceH {
			ah = spaceH
		}

		ax := colX[c.column] + padL + (spaceW-aw)/2
		switch {
		case c.align&AlignLeft != 0:
			ax = colX[c.column] + padL
		case c.align&AlignRight != 0:
			ax = colX[c.column] + padL + spaceW - aw
		}
		ay := rowY[c.row] + padT + (spaceH-ah)/2
		switch {
		case c.align&AlignTop != 0:
			ay = rowY[c.row] + padT
		case c.align&AlignBottom != 0:
			ay = rowY[c.row] + padT + spaceH - ah
		}

		c.actor.Base().SetBounds(ax, ay, aw, ah)
		if l, ok := c.actor.(Layouter); ok {
			l.Invalidate()
			l.Validate()
		}
	}
}

// Draw validates the layout, renders the background, then the children.
func (t *Table) Draw(screen *ebiten.Image, parentAlpha float64) {
	if !t.Visible {
		return
	}
	t.Validate()
	alpha := parentAlpha * t.Color.A
	if t.background != nil {
		sx, sy := t.LocalToStage(0, 0)
		t.background.Draw(screen, sx, sy, t.Width, t.Height,
			Color{t.Color.R, t.Color.G, t.Color.B, alpha})
	}
	t.drawChildren(screen, alpha)
}

func resizeFloats(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}
