package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bear-block/chatx/internal/message"
)

func mediaMessage(kind message.Kind, atts ...message.Attachment) message.Message {
	return message.Message{
		ID:    "m1",
		Kind:  kind,
		User:  message.User{ID: "other", Name: "Sender"},
		Media: atts,
	}
}

func TestTextRendererShowsContent(t *testing.T) {
	t.Parallel()

	out := Text(textMessage("m1", "plain words", "other"), testContext())
	assert.Contains(t, out, "plain words")
}

func TestTextRendererDeletedPlaceholder(t *testing.T) {
	t.Parallel()

	msg := textMessage("m1", "secret", "other").MarkDeleted(time.Now())
	out := Text(msg, testContext())
	assert.Contains(t, out, "Message deleted")
	assert.NotContains(t, out, "secret")
}

func TestTextRendererEditedMarker(t *testing.T) {
	t.Parallel()

	msg := textMessage("m1", "fixed typo", "other").MarkEdited(time.Now())
	out := Text(msg, testContext())
	assert.Contains(t, out, "(edited)")
}

func TestTextRendererForwardedLabel(t *testing.T) {
	t.Parallel()

	msg := textMessage("m1", "seen elsewhere", "other")
	msg.IsForwarded = true
	msg.ForwardedFrom = "Alex"

	out := Text(msg, testContext())
	assert.Contains(t, out, "Forwarded from Alex")
}

func TestTextRendererTimestampToggle(t *testing.T) {
	t.Parallel()

	msg := textMessage("m1", "when", "other")

	ctx := testContext()
	assert.NotContains(t, Text(msg, ctx), "12:30")

	ctx.ShowTimestamps = true
	assert.Contains(t, Text(msg, ctx), "12:30")
}

func TestImageRendererSingle(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindImage, message.Attachment{
		Kind:     message.MediaImage,
		Filename: "sunset.jpg",
		Width:    640,
		Height:   480,
	})
	msg.Text = "look at this"

	out := Image(msg, testContext())
	assert.Contains(t, out, "sunset.jpg")
	assert.Contains(t, out, "look at this")
}

func TestImageRendererNoAttachmentRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Image(mediaMessage(message.KindImage), testContext()))
}

func TestImageRendererGalleryOverflow(t *testing.T) {
	t.Parallel()

	atts := make([]message.Attachment, 6)
	for i := range atts {
		atts[i] = message.Attachment{Kind: message.MediaImage, Width: 640, Height: 480}
	}

	out := Image(mediaMessage(message.KindImage, atts...), testContext())
	assert.Contains(t, out, "+2")
	assert.Contains(t, out, "6 photos")
}

func TestImageRendererGalleryCaptionPrefersText(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindImage,
		message.Attachment{Kind: message.MediaImage},
		message.Attachment{Kind: message.MediaImage},
	)
	msg.Text = "holiday pics"

	out := Image(msg, testContext())
	assert.Contains(t, out, "holiday pics")
	assert.NotContains(t, out, "2 photos")
}

func TestImageRendererUploadProgress(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindImage, message.Attachment{
		Kind:     message.MediaImage,
		Status:   message.MediaUploading,
		Progress: 45,
	})

	out := Image(msg, testContext())
	assert.Contains(t, out, "uploading")
	assert.Contains(t, out, "45%")
}

func TestVideoRendererDurationAndSize(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindVideo, message.Attachment{
		Kind:     message.MediaVideo,
		Filename: "demo.mp4",
		Size:     12 * 1024 * 1024,
		Duration: 65,
		Width:    1920,
		Height:   1080,
	})

	out := Video(msg, testContext())
	assert.Contains(t, out, "1:05")
	assert.Contains(t, out, "12.0 MB")
	assert.Contains(t, out, "demo.mp4")
}

func TestVideoRendererNoAttachmentRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Video(mediaMessage(message.KindVideo), testContext()))
}

func TestAudioRendererDuration(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindAudio, message.Attachment{
		Kind:     message.MediaAudio,
		Size:     256000,
		Duration: 42,
	})

	out := Audio(msg, testContext())
	assert.Contains(t, out, "0:42")
	assert.Contains(t, out, "250.0 KB")
}

func TestFileRendererNameAndSize(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindFile, message.Attachment{
		Kind:     message.MediaFile,
		Filename: "report.pdf",
		Size:     1536,
	})

	out := File(msg, testContext())
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "1.5 KB")
}

func TestFileRendererNoAttachmentRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, File(mediaMessage(message.KindFile), testContext()))
}

func TestGifRendererTagsContent(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindGif, message.Attachment{
		Kind:  message.MediaGif,
		Width: 320, Height: 240,
	})

	out := Gif(msg, testContext())
	assert.Contains(t, out, "GIF")
}

func TestGifRendererFallsBackToImageAttachment(t *testing.T) {
	t.Parallel()

	msg := mediaMessage(message.KindGif, message.Attachment{
		Kind:  message.MediaImage,
		Width: 320, Height: 240,
	})
	msg.Custom = map[string]any{"gif": "https://example.com/a.gif"}

	out := Gif(msg, testContext())
	assert.Contains(t, out, "GIF")
}

func TestGifRendererNoAttachmentRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Gif(mediaMessage(message.KindGif), testContext()))
}

func TestSystemRendererFallsBackToText(t *testing.T) {
	t.Parallel()

	msg := message.Message{Kind: message.KindSystem, Text: "Chat started"}
	out := System(msg, testContext())
	assert.Contains(t, out, "Chat started")
}
