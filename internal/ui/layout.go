package ui

const (
	listWidthMax   = 28
	sideWidth      = 34
	minCenterWidth = 24
	minBodyHeight  = 8

	// overlay lines above the image box, readout lines below it.
	overlayRows = 2
	readoutRows = 2
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout is the screen geometry shared by View and mouse hit testing.
type layout struct {
	width       int
	height      int
	bodyTop     int
	bodyHeight  int
	listWidth   int
	centerWidth int
	sideWidth   int
	image       rect
}

func computeLayout(width, height int, footer bool) layout {
	l := layout{width: width, height: height, bodyTop: 1}
	bottom := 1
	if footer {
		bottom++
	}
	l.bodyHeight = height - l.bodyTop - bottom
	if l.bodyHeight < minBodyHeight {
		l.bodyHeight = minBodyHeight
	}

	l.listWidth = width / 4
	if l.listWidth > listWidthMax {
		l.listWidth = listWidthMax
	}
	l.sideWidth = sideWidth
	if width-l.listWidth-l.sideWidth < minCenterWidth {
		l.sideWidth = 0
	}
	l.centerWidth = width - l.listWidth - l.sideWidth
	if l.centerWidth < 4 {
		l.centerWidth = 4
	}

	innerHeight := l.bodyHeight - overlayRows - readoutRows - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	l.image = rect{
		x: l.listWidth + 1,
		y: l.bodyTop + overlayRows + 1,
		w: l.centerWidth - 2,
		h: innerHeight,
	}
	return l
}

func (m *Model) layout() layout {
	return computeLayout(m.viewWidth(), m.viewHeight(), m.showFooter)
}

// listRows is how many series rows fit under the explorer title.
func (l layout) listRows() int {
	rows := l.bodyHeight - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l layout) listRowsTop() int {
	return l.bodyTop + 1
}

func (l layout) inList(x, y int) bool {
	return x >= 0 && x < l.listWidth && y >= l.bodyTop && y < l.bodyTop+l.bodyHeight
}
