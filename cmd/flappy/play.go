package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	tag, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	store, err := storage.Open(flagStore, recordPath(flagStore, flagHighScore))
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := storage.LoadRecord(store, tag)
	if err != nil {
		logger.Warn("high score unreadable, starting from zero", "error", err)
	}
	logger.Info("high score loaded", "high_score", record.HighScore, "path", record.Path, "store", flagStore)

	loader := assets.NewLoader(flagAssets)
	sprites, err := game.LoadSprites(loader)
	if err != nil {
		return err
	}

	bank := audio.NewBank(loader.FS(), cfg.Audio.Volume)
	bank.SetMute(flagMute)
	if !flagMute {
		if err := bank.Init(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		}
	}
	defer bank.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting",
		"tick_rate", cfg.TickRate,
		"screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"spawn_ticks", cfg.SpawnTicks(),
		"seed", seed,
		"mute", flagMute,
	)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	world := game.NewWorld(cfg, sprites, loadSounds(bank, logger), record, seed)
	err = tui.Run(tui.Options{
		World:    world,
		Renderer: game.NewRenderer(cfg.Screen.Width, cfg.Screen.Height),
		Store:    store,
		Logger:   logger,
		TickRate: cfg.TickRate,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		logger.Error("exiting with error", "error", err)
	}
	return err
}

// recordPath returns path or the default record file of the backend.
func recordPath(backend, path string) string {
	if path != "" {
		return path
	}
	name := "high_score.json"
	if backend == storage.BackendSQLite {
		name = "high_score.db"
	}
	return filepath.Join("~", ".flappy", name)
}

// loadSounds loads the three effects. A missing effect is logged and
// stays silent.
func loadSounds(bank *audio.Bank, logger *log.Logger) game.Sounds {
	sounds := game.SilentSounds()
	load := func(dst *game.Sound, name string) {
		snd, err := bank.Load(name)
		if err != nil {
			logger.Warn("sound unavailable", "name", name, "error", err)
			return
		}
		logger.Debug("sound loaded", "name", snd.Name(), "duration", snd.Duration(), "volume", snd.Volume())
		*dst = snd
	}
	load(&sounds.Wing, "sfx_wing.wav")
	load(&sounds.Hit, "sfx_hit.wav")
	load(&sounds.Point, "sfx_point.wav")
	return sounds
}
