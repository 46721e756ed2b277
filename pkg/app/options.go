package app

import (
	"fmt"
	"strings"

	"github.com/flux-ui/flux/pkg/graphics"
)

// Background selects how the window behind the root view is composed.
type Background int

const (
	// BackgroundOpaque draws an opaque window.
	BackgroundOpaque Background = iota
	// BackgroundTransparent lets the desktop show through unpainted pixels.
	BackgroundTransparent
	// BackgroundBlurred is transparent with a blurred desktop behind it.
	BackgroundBlurred
)

func (b Background) String() string {
	switch b {
	case BackgroundOpaque:
		return "opaque"
	case BackgroundTransparent:
		return "transparent"
	case BackgroundBlurred:
		return "blurred"
	default:
		return fmt.Sprintf("Background(%d)", int(b))
	}
}

// Transparent reports whether the window needs an alpha channel.
func (b Background) Transparent() bool {
	return b != BackgroundOpaque
}

// ParseBackground parses the String form of a Background. The empty string
// is opaque.
func ParseBackground(s string) (Background, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "opaque":
		return BackgroundOpaque, nil
	case "transparent":
		return BackgroundTransparent, nil
	case "blurred":
		return BackgroundBlurred, nil
	default:
		return BackgroundOpaque, fmt.Errorf("unknown window background %q", s)
	}
}

// WindowOptions describes the window an App is shown in.
type WindowOptions struct {
	Title      string
	Size       graphics.Size
	Background Background
	// ShowTitle, ShowButtons and ShowTitlebar control the title bar. A
	// hidden title bar extends the content under it.
	ShowTitle    bool
	ShowButtons  bool
	ShowTitlebar bool
}

const (
	DefaultTitle  = "Flux"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultWindowOptions returns an opaque 800x600 window titled "Flux" with
// the full title bar.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Title:        DefaultTitle,
		Size:         graphics.Size{Width: DefaultWidth, Height: DefaultHeight},
		Background:   BackgroundOpaque,
		ShowTitle:    true,
		ShowButtons:  true,
		ShowTitlebar: true,
	}
}
