package views

// HitKind says what a pointer position landed on
type HitKind int

const (
	HitOutside HitKind = iota
	HitLabel
	HitClear
	HitInput
	HitRow
	HitPanel // inside the panel but not on a row
)

// Hit is the result of a hit test
type Hit struct {
	Kind  HitKind
	Index int // active-list index for HitRow
}

// Layout records where the last render placed the widget, in screen cells
type Layout struct {
	LabelRow     int
	ClearStart   int // -1 when no clear affordance is shown
	ClearEnd     int
	InputRow     int
	PanelTop     int
	PanelRows    int
	FirstIndex   int
	WidgetBottom int // last line of the widget, inclusive
}

// HitTest classifies a click at column x, line y
func (l Layout) HitTest(x, y int) Hit {
	switch {
	case y == l.LabelRow:
		if l.ClearStart >= 0 && x >= l.ClearStart && x < l.ClearEnd {
			return Hit{Kind: HitClear}
		}
		return Hit{Kind: HitLabel}
	case y == l.InputRow:
		return Hit{Kind: HitInput}
	case l.PanelRows > 0 && y >= l.PanelTop && y < l.PanelTop+l.PanelRows:
		return Hit{Kind: HitRow, Index: l.FirstIndex + y - l.PanelTop}
	case y > l.InputRow && y <= l.WidgetBottom:
		return Hit{Kind: HitPanel}
	}
	return Hit{Kind: HitOutside}
}
