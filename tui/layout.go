package tui

import "github.com/charmbracelet/lipgloss"

const (
	headerHeight  = 1
	footerHeight  = 2
	minPaneWidth  = 16
	minBodyHeight = 4
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout holds outer sizes (borders included) of every block on screen.
type layout struct {
	membersWidth  int
	messagesWidth int
	bodyHeight    int
	inputWidth    int
	rowHeight     int
	// overflow is how many top lines are dropped when the view is taller
	// than the window, matching what the renderer shows.
	overflow int
	button   rect
}

func computeLayout(width, height, memberPercent, inputHeight int) layout {
	button := buttonStyle.Render(buttonLabel)
	buttonWidth := lipgloss.Width(button)
	buttonHeight := lipgloss.Height(button)

	rowHeight := max(inputHeight+2, buttonHeight)
	bodyHeight := max(height-headerHeight-rowHeight-footerHeight, minBodyHeight)

	membersWidth := max(width*memberPercent/100, minPaneWidth)
	messagesWidth := max(width-membersWidth, minPaneWidth)
	inputWidth := max(width-buttonWidth-1, minPaneWidth)

	total := headerHeight + bodyHeight + rowHeight + footerHeight
	overflow := max(total-height, 0)

	return layout{
		membersWidth:  membersWidth,
		messagesWidth: messagesWidth,
		bodyHeight:    bodyHeight,
		inputWidth:    inputWidth,
		rowHeight:     rowHeight,
		overflow:      overflow,
		button: rect{
			x: inputWidth + 1,
			y: headerHeight + bodyHeight - overflow,
			w: buttonWidth,
			h: buttonHeight,
		},
	}
}
