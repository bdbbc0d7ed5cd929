package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func TestSSHServerShowsBestScore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "scores.db")

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(shooter.BuildFull, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      dbPath,
		TickRate:    60,
		Logger:      log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	t.Cleanup(func() { shooter.SetHighScoreLookup(nil) })

	b, _ := shooter.BuildByID(shooter.BuildFull)
	g := shooter.NewWithConfig(b, config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Best: 9") {
		t.Errorf("HUD does not show the stored best score:\n%s", screen.String())
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() = %v, expected nil", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if strings.Contains(screen.String(), "Best:") {
		t.Error("best score still shown after shutdown")
	}
}
