package render

import "github.com/gdamore/tcell/v2"

// Renderer draws one layer of the frame
type Renderer interface {
	Render(ctx Context, s tcell.Screen)
}

// VisibilityToggle is optionally implemented to skip a renderer for some frames
type VisibilityToggle interface {
	IsVisible(ctx Context) bool
}
