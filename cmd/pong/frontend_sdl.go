//go:build sdl

package main

import (
	"runtime"

	// SDL2 window, needs the SDL2 and SDL2_ttf libraries
	_ "github.com/vovakirdan/pong-clone/internal/platform/sdl"
)

// SDL must run on the main OS thread. init runs on it, and locking here
// keeps main on it for the life of the process.
func init() {
	runtime.LockOSThread()
}
