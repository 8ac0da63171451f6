//go:build !ebiten

package app

import (
	"context"
	"errors"

	"lifeline/internal/life"
)

// ErrNoGUI reports a binary built without the ebiten tag.
var ErrNoGUI = errors.New("app: the gui viewer requires building with -tags ebiten")

// RunGUI always fails in headless builds.
func RunGUI(context.Context, *life.Link, *Config) error {
	return ErrNoGUI
}
