package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/revise/buffer"
)

// cellWidth returns the terminal-cell width of one grapheme cluster drawn at
// visualCol. Tabs advance to the next tab stop.
func cellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// visualCol returns the cell offset at which cluster x of r starts.
func visualCol(r *buffer.Row, x, tabWidth int) int {
	if r == nil {
		return 0
	}
	col := 0
	for i := 0; i < x && i < r.Len(); i++ {
		col += cellWidth(r.Cluster(i), col, tabWidth)
	}
	return col
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
