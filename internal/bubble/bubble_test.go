package bubble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bear-block/chatx/internal/decorator"
	"github.com/bear-block/chatx/internal/message"
	"github.com/bear-block/chatx/internal/ui"
)

func testCtx() ui.Context {
	ctx := ui.DefaultContext()
	ctx.Unicode = false
	return ctx
}

func TestBubbleRendersThroughRenderable(t *testing.T) {
	t.Parallel()

	var r ui.Renderable = Bubble{Content: "hello", Variant: VariantDefault}
	assert.Contains(t, r.Render(testCtx()), "hello")
}

func TestRenderEmptyBubbleDoesNotFail(t *testing.T) {
	t.Parallel()

	out := Bubble{}.Render(testCtx())
	assert.NotPanics(t, func() { _ = out })
}

func TestRenderZeroDecorators(t *testing.T) {
	t.Parallel()

	out := Bubble{Content: "hello", Variant: VariantDefault}.Render(testCtx())
	assert.Contains(t, out, "hello")
}

func TestDecoratorsAnchoredAroundBubble(t *testing.T) {
	t.Parallel()

	b := Bubble{
		Content: "body",
		Decorators: []decorator.Decorator{
			{Anchor: decorator.AnchorTop, Fragment: "TOPFRAG"},
			{Anchor: decorator.AnchorBottom, Fragment: "BOTFRAG"},
			{Anchor: decorator.AnchorLeft, Fragment: "L"},
			{Anchor: decorator.AnchorRight, Fragment: "R"},
		},
	}
	out := b.Render(testCtx())

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2)

	// Top fragment appears strictly above the content, bottom strictly below.
	topIdx, bodyIdx, botIdx := -1, -1, -1
	for i, line := range lines {
		if strings.Contains(line, "TOPFRAG") {
			topIdx = i
		}
		if strings.Contains(line, "body") {
			bodyIdx = i
		}
		if strings.Contains(line, "BOTFRAG") {
			botIdx = i
		}
	}
	require.NotEqual(t, -1, topIdx)
	require.NotEqual(t, -1, bodyIdx)
	require.NotEqual(t, -1, botIdx)
	assert.Less(t, topIdx, bodyIdx)
	assert.Greater(t, botIdx, bodyIdx)

	// Left fragment precedes the right fragment on the bubble row.
	assert.Less(t, strings.Index(out, "L"), strings.Index(out, "R"))
}

func TestVariantFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  message.Message
		want Variant
	}{
		{"default", message.Message{Kind: message.KindText}, VariantDefault},
		{"pinned", message.Message{Kind: message.KindText, IsPinned: true}, VariantPinned},
		{"system wins over pinned", message.Message{Kind: message.KindSystem, IsPinned: true}, VariantSystem},
		{"highlighted", message.Message{Kind: message.KindText, Custom: map[string]any{"highlighted": true}}, VariantHighlighted},
		{"pinned wins over highlighted", message.Message{Kind: message.KindText, IsPinned: true, Custom: map[string]any{"highlighted": true}}, VariantPinned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VariantFor(tt.msg))
		})
	}
}

func TestTailBorderSidesBySender(t *testing.T) {
	t.Parallel()

	base := ui.DefaultContext().Theme.Borders.Rounded

	own := Bubble{IsCurrentUser: true, ShowTail: true}.tailBorder(base)
	assert.Equal(t, "┘", own.BottomRight)
	assert.Equal(t, base.BottomLeft, own.BottomLeft)

	other := Bubble{IsCurrentUser: false, ShowTail: true}.tailBorder(base)
	assert.Equal(t, "└", other.BottomLeft)
	assert.Equal(t, base.BottomRight, other.BottomRight)

	off := Bubble{IsCurrentUser: true, ShowTail: false}.tailBorder(base)
	assert.Equal(t, base, off)
}

func TestVariantStringNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", VariantDefault.String())
	assert.Equal(t, "compact", VariantCompact.String())
	assert.Equal(t, "highlighted", VariantHighlighted.String())
	assert.Equal(t, "pinned", VariantPinned.String())
	assert.Equal(t, "system", VariantSystem.String())
}
