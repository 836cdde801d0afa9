package renderer

import (
	"fmt"
)

// Media box sizing caps, in logical pixels. Width is additionally capped at
// 70% of the viewport width.
const (
	MaxImageHeight = 300
	MaxVideoHeight = 200

	mediaWidthRatioNum = 70
	mediaWidthRatioDen = 100
)

// Box is a target media layout size in logical pixels.
type Box struct {
	Width  int
	Height int
}

// FitBox computes the display box for a source of the given dimensions:
// width capped at maxWidth, height at maxHeight, aspect ratio preserved,
// shrinking from whichever dimension overflows first. Unknown source
// dimensions fall back to a full-width 200-tall box.
func FitBox(srcWidth, srcHeight, maxWidth, maxHeight int) Box {
	if srcWidth <= 0 || srcHeight <= 0 {
		return Box{Width: maxWidth, Height: 200}
	}

	aspect := float64(srcWidth) / float64(srcHeight)
	width := float64(maxWidth)
	height := width / aspect

	if height > float64(maxHeight) {
		height = float64(maxHeight)
		width = height * aspect
	}

	return Box{Width: int(width + 0.5), Height: int(height + 0.5)}
}

// maxMediaWidth returns the pixel width cap for media at the given viewport
// width: 70% of the viewport, treating one cell as ten logical pixels.
func maxMediaWidth(viewportWidth int) int {
	if viewportWidth <= 0 {
		viewportWidth = 80
	}
	return viewportWidth * 10 * mediaWidthRatioNum / mediaWidthRatioDen
}

// FormatFileSize renders a byte count using the largest unit that is at
// least 1 among B/KB/MB/GB, base-1024, with one decimal place. Zero is a
// bare "0 B".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB"}
	value := float64(bytes)
	idx := 0
	for value >= 1024 && idx < len(units)-1 {
		value /= 1024
		idx++
	}
	return fmt.Sprintf("%.1f %s", value, units[idx])
}

// FormatDuration renders whole seconds as minutes:seconds with the seconds
// zero-padded to two digits.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
