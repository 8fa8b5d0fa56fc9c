package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/core"
	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

type nullTexture struct{}

func (nullTexture) Size() (int, int) { return 0, 0 }
func (nullTexture) Release()         {}

// nullBackend satisfies Backend and records what it was opened with.
type nullBackend struct {
	platform.EventQueue
	cfg    config.Config
	closed bool
}

func (b *nullBackend) ReadKeys(dst *kbd.Snapshot) { *dst = kbd.Snapshot{} }
func (b *nullBackend) SetDrawColor(core.RGBA)     {}
func (b *nullBackend) Clear()                     {}
func (b *nullBackend) FillRect(core.Rect)         {}
func (b *nullBackend) Present()                   {}

func (b *nullBackend) RenderText(string, core.RGBA) (platform.Texture, error) {
	return nullTexture{}, nil
}

func (b *nullBackend) CopyTexture(platform.Texture, core.Rect) {}

func (b *nullBackend) Run(ctx context.Context, g *pong.Game) error {
	return pong.Run(ctx, g, platform.SystemClock{}, pong.LoopOptions{})
}

func (b *nullBackend) Close() error {
	b.closed = true
	return nil
}

func TestRegisterAndOpen(t *testing.T) {
	Register("test-null", "Null", func(cfg config.Config, _ *log.Logger) (Backend, error) {
		return &nullBackend{cfg: cfg}, nil
	})

	if !Exists("test-null") {
		t.Fatal("Exists() = false after Register")
	}

	cfg := config.Default()
	cfg.Font.Size = 42
	b, err := Open("test-null", cfg, log.Default())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	nb, ok := b.(*nullBackend)
	if !ok {
		t.Fatalf("Open() returned %T, expected *nullBackend", b)
	}
	if nb.cfg.Font.Size != 42 {
		t.Errorf("factory received font size %v, expected 42", nb.cfg.Font.Size)
	}

	// The backend can drive a game to completion
	g := pong.New(kbd.New(b), b, b, b)
	nb.Push(platform.Event{Type: platform.EventQuit})
	if err := b.Run(context.Background(), g); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if g.Running() {
		t.Error("game should have stopped on quit")
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("no-such-backend", config.Default(), log.Default())
	if !errors.Is(err, platform.ErrUnknownBackend) {
		t.Errorf("Open() error = %v, expected ErrUnknownBackend", err)
	}
	if Exists("no-such-backend") {
		t.Error("Exists() = true for unregistered name")
	}
}

func TestOpenPropagatesFactoryError(t *testing.T) {
	boom := platform.NewInitError("window", errors.New("no display"))
	Register("test-failing", "Failing", func(config.Config, *log.Logger) (Backend, error) {
		return nil, boom
	})

	_, err := Open("test-failing", config.Default(), log.Default())
	var initErr *platform.InitError
	if !errors.As(err, &initErr) || initErr.Stage != "window" {
		t.Errorf("Open() error = %v, expected window InitError", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.Config, *log.Logger) (Backend, error) { return &nullBackend{}, nil }
	Register("test-dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("test-dup", "Dup", f)
}

func TestListSorted(t *testing.T) {
	f := func(config.Config, *log.Logger) (Backend, error) { return &nullBackend{}, nil }
	Register("test-zz", "Last", f)
	Register("test-aa", "First", f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	var found bool
	for _, info := range list {
		if info.Name == "test-aa" {
			found = info.Title == "First"
		}
	}
	if !found {
		t.Errorf("List() = %v, expected test-aa with title First", list)
	}
}
