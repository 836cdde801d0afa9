package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bear-block/chatx/internal/message"
)

// Image renders one or more image attachments. A single image gets a framed
// preview sized to fit the viewport; multiple images collapse into a
// two-column gallery of up to four cells with a +N overflow marker.
// Messages without image attachments render nothing.
func Image(msg message.Message, ctx Context) string {
	images := msg.MediaOfKind(message.MediaImage)
	if len(images) == 0 {
		return ""
	}

	if len(images) == 1 {
		return compose(msg, singleImage(msg, images[0], ctx), ctx)
	}
	return compose(msg, imageGallery(msg, images, ctx), ctx)
}

func singleImage(msg message.Message, att message.Attachment, ctx Context) string {
	box := FitBox(att.Width, att.Height, maxMediaWidth(ctx.Width), MaxImageHeight)

	label := att.Filename
	if label == "" {
		label = "photo"
	}
	icon := "🖼"
	if !ctx.Unicode {
		icon = "[img]"
	}

	lines := []string{mediaFrame(icon+" "+label, box, ctx)}
	if bar := progressBar(att, ctx); bar != "" {
		lines = append(lines, bar)
	}
	if msg.Text != "" {
		lines = append(lines, msg.Text)
	}
	if meta := metaLine(msg, ctx); meta != "" {
		lines = append(lines, meta)
	}
	return strings.Join(lines, "\n")
}

// galleryCells caps how many thumbnails a multi-image message shows.
const galleryCells = 4

func imageGallery(msg message.Message, images []message.Attachment, ctx Context) string {
	shown := images
	if len(shown) > galleryCells {
		shown = shown[:galleryCells]
	}

	// Each cell takes half the media width so two fit side by side.
	cell := Box{Width: maxMediaWidth(ctx.Width) / 2, Height: MaxImageHeight / 2}

	icon := "🖼"
	if !ctx.Unicode {
		icon = "[img]"
	}

	cells := make([]string, len(shown))
	for i := range shown {
		label := icon
		if i == len(shown)-1 && len(images) > galleryCells {
			label = fmt.Sprintf("+%d", len(images)-galleryCells)
		}
		cells[i] = mediaFrame(label, cell, ctx)
	}

	rows := make([]string, 0, 2)
	for i := 0; i < len(cells); i += 2 {
		end := i + 2
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}

	caption := msg.Text
	if caption == "" {
		caption = fmt.Sprintf("%d photos", len(images))
	}

	lines := []string{lipgloss.JoinVertical(lipgloss.Left, rows...), caption}
	if meta := metaLine(msg, ctx); meta != "" {
		lines = append(lines, meta)
	}
	return strings.Join(lines, "\n")
}

// mediaFrame draws a bordered placeholder for media content, translating the
// logical pixel box into terminal cells.
func mediaFrame(label string, box Box, ctx Context) string {
	width := box.Width / 10
	if width < 12 {
		width = 12
	}
	height := box.Height / 60
	if height < 1 {
		height = 1
	}

	return lipgloss.NewStyle().
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(ctx.Theme.Palette.Neutral.Muted).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

// progressBar renders a transfer bar for attachments that are mid upload or
// download. Settled attachments produce no bar.
func progressBar(att message.Attachment, ctx Context) string {
	if att.Status != message.MediaUploading && att.Status != message.MediaDownloading {
		return ""
	}

	pct := att.Progress
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	const cells = 10
	filled := pct * cells / 100
	full, empty := "█", "░"
	if !ctx.Unicode {
		full, empty = "#", "-"
	}
	bar := strings.Repeat(full, filled) + strings.Repeat(empty, cells-filled)

	verb := "uploading"
	if att.Status == message.MediaDownloading {
		verb = "downloading"
	}
	return mutedStyle(ctx).Render(fmt.Sprintf("%s %s %d%%", verb, bar, pct))
}
