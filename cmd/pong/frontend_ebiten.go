//go:build ebiten

package main

import (
	// Ebiten window
	_ "github.com/vovakirdan/pong-clone/internal/platform/ebiten"
)
