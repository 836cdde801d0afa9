// Package ui defines the rendering contract shared by all chat components.
// Components render to strings; layout and theme travel through an explicit
// Context rather than global state, so multiple themed chats can coexist and
// tests can run in parallel.
package ui

import (
	"github.com/bear-block/chatx/internal/theme"
)

// Renderable is anything that renders itself to a terminal fragment under a
// render context.
type Renderable interface {
	Render(ctx Context) string
}

// Context provides theme and layout information to components during a
// render pass.
type Context struct {
	Theme theme.Theme

	// Width is the available viewport width in cells. Media boxes cap their
	// width at 70% of it.
	Width int

	ShowTimestamps bool
	ShowAvatars    bool

	// Unicode selects glyph icons; when false components fall back to ASCII.
	Unicode bool
}

// DefaultContext returns a render context with the default theme and an
// 80-cell viewport.
func DefaultContext() Context {
	return Context{
		Theme:          theme.Default(),
		Width:          80,
		ShowTimestamps: true,
		ShowAvatars:    true,
		Unicode:        true,
	}
}

// WithTheme returns a copy of the context using the given theme.
func (c Context) WithTheme(t theme.Theme) Context {
	c.Theme = t
	return c
}

// WithWidth returns a copy of the context with the given viewport width.
func (c Context) WithWidth(width int) Context {
	if width > 0 {
		c.Width = width
	}
	return c
}
