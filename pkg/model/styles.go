package model

import (
	"strings"

	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/enescakir/emoji"
	"github.com/lucasb-eyer/go-colorful"
	te "github.com/muesli/termenv"

	"github.com/postbox-tui/postbox/pkg/ui"
)

type styleFunc func(string) string

var (
	fuchsia = lipgloss.Color("#EE6FF8")

	feedTextInputPromptStyle styleFunc = styleFunc(ui.NewFgStyle(lib.YellowGreen))
	dividerDot               string    = ui.DarkGrayFg(" • ")
	dividerBar               string    = ui.DarkGrayFg(" │ ")

	tabColor         = ui.GrayFg
	selectedTabColor = ui.BrightGrayFg

	logoColors = colorGrid(12, 1)[0]
)

// statusMessageType adds some context to the status message being sent.
type statusMessageType int

// Types of status messages.
const (
	normalStatusMessage statusMessageType = iota
	subtleStatusMessage
	errorStatusMessage
)

// statusMessage is an ephemeral note displayed in the UI.
type statusMessage struct {
	status  statusMessageType
	message string
}

// String returns a styled version of the status message appropriate for the
// given context.
func (s statusMessage) String() string {
	switch s.status {
	case subtleStatusMessage:
		return ui.DimGreenFg(s.message)
	case errorStatusMessage:
		return ui.RedFg(s.message)
	default:
		return ui.GreenFg(s.message)
	}
}

// logoView renders the application mark with a color ramp across the text.
func logoView(text string) string {
	b := strings.Builder{}
	b.WriteString(emoji.Postbox.String())
	b.WriteString(" ")
	runes := []rune(text)
	for i, r := range runes {
		c := logoColors[(i*len(logoColors))/len(runes)]
		b.WriteString(te.String(string(r)).Bold().Foreground(lib.Color(c)).String())
	}
	return b.String()
}

func colorGrid(xSteps, ySteps int) [][]string {
	x0y0, _ := colorful.Hex("#F25D94")
	x1y0, _ := colorful.Hex("#EDFF82")
	x0y1, _ := colorful.Hex("#643AFF")
	x1y1, _ := colorful.Hex("#14F9D5")

	x0 := make([]colorful.Color, ySteps)
	for i := range x0 {
		x0[i] = x0y0.BlendLuv(x0y1, float64(i)/float64(ySteps))
	}

	x1 := make([]colorful.Color, ySteps)
	for i := range x1 {
		x1[i] = x1y0.BlendLuv(x1y1, float64(i)/float64(ySteps))
	}

	grid := make([][]string, ySteps)
	for x := 0; x < ySteps; x++ {
		y0 := x0[x]
		grid[x] = make([]string, xSteps)
		for y := 0; y < xSteps; y++ {
			grid[x][y] = y0.BlendLuv(x1[x], float64(y)/float64(xSteps)).Hex()
		}
	}

	return grid
}
