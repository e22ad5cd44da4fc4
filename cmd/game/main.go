// cmd/game/main.go
package main

import (
	"fmt"
	"os"

	"egg-invaders/internal/app"
	"egg-invaders/internal/assets"
	"egg-invaders/internal/config"
	"egg-invaders/internal/input/ebiteninput"
	"egg-invaders/internal/sound"
	"egg-invaders/internal/sound/ebitenaudio"
	"egg-invaders/internal/utils"
	"egg-invaders/pkg/render/ebitenrender"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame связывает игру с циклом ebiten: ebiten вызывает Update с частотой
// fps, поэтому шаг симуляции фиксированный.
type AppGame struct {
	game    *app.Game
	poller  *ebiteninput.Poller
	surface *ebitenrender.Surface
	dt      float64
	quit    bool
}

func (a *AppGame) Update() error {
	for _, ev := range a.poller.Poll() {
		if !a.game.HandleEvent(ev) {
			a.quit = true
		}
	}
	if a.quit {
		return ebiten.Termination
	}
	a.game.Update(a.dt)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.Bind(screen)
	a.game.Draw(a.surface)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func run(logger *log.Logger) error {
	cfg, err := config.Load(config.GetEnv("INVADERS_CONFIG", ""))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.DebugMode = cfg.DebugMode || config.GetEnvBool("INVADERS_DEBUG", false)

	root := os.DirFS(config.GetEnv("INVADERS_ASSETS", "assets"))

	sprites := assets.NewSpriteManager(root, logger.WithPrefix("assets"))
	sprites.LoadTable(assets.DefaultSprites)
	fonts, err := assets.LoadFonts(root, assets.DefaultFontPath)
	if err != nil {
		logger.Warn("using built-in font", "err", err)
	}

	sounds := sound.NewSounds(root, ebitenaudio.NewBackend(), logger.WithPrefix("sound"))
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

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Egg Invaders")
	ebiten.SetTPS(cfg.FPS)

	a := &AppGame{
		game:    game,
		poller:  ebiteninput.NewPoller(),
		surface: ebitenrender.NewSurface(sprites, fonts, config.ScreenWidth, config.ScreenHeight),
		dt:      cfg.TickSeconds(),
	}
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if config.GetEnvBool("INVADERS_DEBUG", false) {
		logger.SetLevel(log.DebugLevel)
	}
	if err := run(logger); err != nil {
		logger.Fatal("egg invaders", "err", err)
	}
}
