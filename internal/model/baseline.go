package model

// BaselineCell holds the canonical plan inputs for one (role, level, month).
// Values are immutable once loaded for a computation pass; edits produce a
// superseding cell in a new grid snapshot.
type BaselineCell struct {
	Recruitment float64 `json:"recruitment"` // hires planned for the month
	Churn       float64 `json:"churn"`       // leavers planned for the month
	Price       float64 `json:"price"`       // billable rate, currency/hour
	Utilization float64 `json:"utilization"` // billable share of capacity, 0..1
	Salary      float64 `json:"salary"`      // currency/month
}

type CellKey struct {
	Role  Role
	Level Level
	Month Month
}

// BaselineGrid is a versioned, copy-on-write snapshot of baseline cells.
// Readers always see a consistent snapshot; WithCell returns a new grid and
// bumps the version, it never mutates the receiver.
type BaselineGrid struct {
	version uint64
	cells   map[CellKey]BaselineCell
}

func NewBaselineGrid() *BaselineGrid {
	return &BaselineGrid{cells: map[CellKey]BaselineCell{}}
}

func (g *BaselineGrid) Version() uint64 { return g.version }

func (g *BaselineGrid) Len() int { return len(g.cells) }

// Lookup returns the cell for the key, if one was loaded.
func (g *BaselineGrid) Lookup(role Role, level Level, month Month) (BaselineCell, bool) {
	c, ok := g.cells[CellKey{Role: role, Level: level, Month: month}]
	return c, ok
}

// WithCell returns a new snapshot containing cell at the key.
func (g *BaselineGrid) WithCell(role Role, level Level, month Month, cell BaselineCell) *BaselineGrid {
	next := &BaselineGrid{
		version: g.version + 1,
		cells:   make(map[CellKey]BaselineCell, len(g.cells)+1),
	}
	for k, v := range g.cells {
		next.cells[k] = v
	}
	next.cells[CellKey{Role: role, Level: level, Month: month}] = cell
	return next
}
