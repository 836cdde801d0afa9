package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bear-block/chatx/internal/bubble"
	"github.com/bear-block/chatx/internal/decorator"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/ui"
)

func testContext() Context {
	uc := ui.DefaultContext()
	uc.Unicode = false
	uc.ShowTimestamps = false
	return Context{Context: uc, CurrentUserID: "me"}
}

func textMessage(id, text, userID string) message.Message {
	return message.Message{
		ID:        id,
		Kind:      message.KindText,
		Text:      text,
		User:      message.User{ID: userID, Name: "Sender"},
		Timestamp: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Status:    message.StatusSent,
	}
}

func TestNewFactoryRequiresRegistry(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(nil)
	require.Error(t, err)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), "registry")
}

func TestFactoryRendersBuiltinText(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	out := f.Render(textMessage("m1", "hello there", "other"), testContext())
	assert.Contains(t, out, "hello there")
}

func TestRegistryOutranksBuiltin(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(message.KindText, stubRenderer("CUSTOM TEXT RENDERER"))
	f, err := NewFactory(reg)
	require.NoError(t, err)

	out := f.Render(textMessage("m1", "hello", "other"), testContext())
	assert.Equal(t, "CUSTOM TEXT RENDERER", out)
}

func TestUnregisterRestoresBuiltin(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(message.KindText, stubRenderer("CUSTOM"))
	f, err := NewFactory(reg)
	require.NoError(t, err)

	msg := textMessage("m1", "back to stock", "other")
	assert.Equal(t, "CUSTOM", f.Render(msg, testContext()))

	reg.Unregister(message.KindText)
	assert.Contains(t, f.Render(msg, testContext()), "back to stock")
}

func TestOverrideBeatsBuiltinButNotRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(message.KindImage, stubRenderer("FROM REGISTRY"))
	f, err := NewFactory(reg, WithOverride(stubRenderer("FROM OVERRIDE")))
	require.NoError(t, err)

	imgMsg := message.Message{Kind: message.KindImage}
	assert.Equal(t, "FROM REGISTRY", f.Render(imgMsg, testContext()))

	txtMsg := textMessage("m1", "hi", "other")
	assert.Equal(t, "FROM OVERRIDE", f.Render(txtMsg, testContext()))
}

func TestUnknownKindFallsBackToText(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := textMessage("m1", "mystery content", "other")
	msg.Kind = "unknown_kind_123"

	out := f.Render(msg, testContext())
	assert.Contains(t, out, "mystery content")
}

func TestUnknownKindWithGifAttachmentRendersGif(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := message.Message{
		ID:   "m1",
		Kind: "some_future_kind",
		User: message.User{ID: "other"},
		Media: []message.Attachment{{
			Kind:     message.MediaImage,
			Filename: "clip.GIF",
			Width:    320,
			Height:   240,
		}},
	}

	out := f.Render(msg, testContext())
	assert.Contains(t, out, "GIF")
}

func TestUnknownKindWithGifPayloadRendersGif(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := message.Message{
		ID:     "m1",
		Kind:   "sticker",
		User:   message.User{ID: "other"},
		Custom: map[string]any{"gif": "https://example.com/a.gif"},
		Media: []message.Attachment{{
			Kind:  message.MediaImage,
			Width: 320, Height: 240,
		}},
	}

	out := f.Render(msg, testContext())
	assert.Contains(t, out, "GIF")
}

func TestGifKindRendersGif(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := message.Message{
		ID:   "m1",
		Kind: message.KindGif,
		User: message.User{ID: "other"},
		Media: []message.Attachment{{
			Kind:  message.MediaGif,
			Width: 320, Height: 240,
		}},
	}

	out := f.Render(msg, testContext())
	assert.Contains(t, out, "GIF")
}

func TestSystemKindUsesSystemRenderer(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := message.Message{
		ID:   "m1",
		Kind: message.KindSystem,
		System: &message.SystemData{
			Event: message.SystemUserJoined,
			Actor: &message.User{ID: "u2", Name: "Riley"},
		},
	}

	out := f.Render(msg, testContext())
	assert.Contains(t, out, "Riley joined the chat")
}

func TestRenderDoesNotMutateMessage(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := textMessage("m1", "immutable", "me")
	msg.Reactions = []message.Reaction{{Emoji: "👍", Count: 1, Users: []string{"other"}}}
	before := msg

	f.Render(msg, testContext())
	assert.Equal(t, before, msg)
}

func TestRenderPartsExposesBubbleInputs(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	msg := textMessage("m1", "hi", "me")
	msg = msg.Pin(time.Now())
	msg.ReplyTo = "parent"

	parts := f.RenderParts(msg, testContext())
	assert.True(t, parts.IsCurrentUser)
	assert.Equal(t, bubble.VariantPinned, parts.Variant)

	anchors := make([]decorator.Anchor, 0, len(parts.Decorators))
	for _, d := range parts.Decorators {
		anchors = append(anchors, d.Anchor)
	}
	assert.Contains(t, anchors, decorator.AnchorTop, "reply preview")
	assert.Contains(t, anchors, decorator.AnchorLeft, "pin marker")
	assert.Contains(t, anchors, decorator.AnchorRight, "delivery status")
}

func TestReplyPreviewEndToEnd(t *testing.T) {
	t.Parallel()

	f, err := NewFactory(NewRegistry())
	require.NoError(t, err)

	parent := textMessage("parent", "original words", "other")
	msg := textMessage("m1", "the reply", "me")
	msg.ReplyTo = "parent"
	msg.ReplyMessage = &parent

	out := f.Render(msg, testContext())
	assert.Contains(t, out, "Replying to")
	assert.Contains(t, out, "original words")
	assert.Contains(t, out, "the reply")
}
