// cmd/tty/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"egg-invaders/internal/app"
	"egg-invaders/internal/config"
	"egg-invaders/internal/input"
	"egg-invaders/internal/loop"
	"egg-invaders/internal/sound"
	"egg-invaders/internal/sound/beepaudio"
	"egg-invaders/internal/utils"
	"egg-invaders/pkg/render"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// terminalFrame перед каждым шагом разбирает ввод, а после отрисовки
// выводит кадр на экран.
type terminalFrame struct {
	game   *app.Game
	reader *input.TerminalReader
	screen tcell.Screen
	driver *loop.Driver
}

func (f *terminalFrame) Update(deltaTime float64) {
	for _, ev := range f.reader.Drain(time.Now()) {
		if !f.game.HandleEvent(ev) {
			f.driver.Stop()
			return
		}
	}
	f.game.Update(deltaTime)
}

func (f *terminalFrame) Draw(surface render.Surface) {
	f.game.Draw(surface)
	f.screen.Show()
}

func run(logger *log.Logger) error {
	cfg, err := config.Load(config.GetEnv("INVADERS_CONFIG", ""))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.DebugMode = cfg.DebugMode || config.GetEnvBool("INVADERS_DEBUG", false)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var backend sound.Backend
	if b, err := beepaudio.NewBackend(); err != nil {
		logger.Warn("running without sound", "err", err)
	} else {
		defer b.Close()
		backend = b
	}
	sounds := sound.NewSounds(os.DirFS(config.GetEnv("INVADERS_ASSETS", "assets")), backend, logger.WithPrefix("sound"))
	sounds.LoadTable(sound.DefaultSounds)

	rng := utils.NewPRNGService(config.GetEnvInt64("INVADERS_SEED", 0))
	logger.Debug("random seed", "seed", rng.Seed())

	game := app.NewGame(app.Options{
		Config: cfg,
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
		Sounds: sounds,
		Rand:   rng,
		Logger: logger.WithPrefix("game"),
	})
	game.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reader := input.NewTerminalReader(screen, config.ScreenWidth, config.ScreenHeight)
	go reader.Run(ctx)

	frame := &terminalFrame{game: game, reader: reader, screen: screen}
	surface := render.NewTerminalSurface(screen, config.ScreenWidth, config.ScreenHeight)
	frame.driver = loop.NewDriver(frame, surface, cfg.FPS, logger.WithPrefix("loop"))

	if err := frame.driver.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func main() {
	// Экран занят игрой, поэтому журнал пишется в файл
	out, err := os.Create(config.GetEnv("INVADERS_LOG", "invaders.log"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "egg invaders:", err)
		os.Exit(1)
	}
	defer out.Close()

	logger := log.NewWithOptions(out, log.Options{ReportTimestamp: true})
	if config.GetEnvBool("INVADERS_DEBUG", false) {
		logger.SetLevel(log.DebugLevel)
	}
	if err := run(logger); err != nil {
		logger.Error("egg invaders", "err", err)
		fmt.Fprintln(os.Stderr, "egg invaders:", err)
		out.Close()
		os.Exit(1)
	}
}
