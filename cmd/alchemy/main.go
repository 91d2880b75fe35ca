package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/alchemy/asset"
	"github.com/lixenwraith/alchemy/audio"
	"github.com/lixenwraith/alchemy/core"
	"github.com/lixenwraith/alchemy/element"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/input"
	"github.com/lixenwraith/alchemy/parameter"
	"github.com/lixenwraith/alchemy/render"
	"github.com/lixenwraith/alchemy/render/renderers"
	"github.com/lixenwraith/alchemy/service"
	"github.com/lixenwraith/alchemy/system"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// .env is optional; real environment wins
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", envOr(parameter.EnvConfigPath, parameter.DefaultConfigPath), "Element and recipe config (yaml or json)")
		assetDir   = flag.String("assets", envOr(parameter.EnvAssetDir, parameter.DefaultAssetDir), "Directory holding element icons")
		debugFlag  = flag.Bool("debug", false, "Enable file logging, strict mode and debug overlay")
		muteFlag   = flag.Bool("mute", false, "Start with sound muted")
		fps        = flag.Int("fps", 0, "Frame rate override (0 uses the default)")
	)
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	// Config errors are reported before the terminal is touched
	cfg, err := element.LoadFile(*configPath, parameter.BaseElements)
	if err != nil {
		var ce *element.ConfigError
		if errors.As(err, &ce) {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", ce)
		} else {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		}
		os.Exit(1)
	}
	log.Printf("config: %s", cfg.Summary())

	resolver := asset.NewResolver(*assetDir)
	for _, icon := range resolver.Preload(cfg.Catalog) {
		log.Printf("asset: %v", icon.Err)
	}
	icons := render.CatalogIcons{Catalog: cfg.Catalog, Resolver: resolver}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetTerminalReset(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	// Start services; the game runs silently when the audio device is unavailable
	hub := service.NewHub()
	sm := audio.NewSoundManager(audio.LoadAudioConfig())
	hub.Register(sm)
	if err := hub.StartAll(); err != nil {
		log.Printf("continuing without: %v", err)
	}
	defer hub.StopAll()

	// Untyped nil when audio is down, AudioSystem then stays silent
	var player system.AudioPlayer
	if hub.Running(sm.Name()) {
		if *muteFlag && !sm.IsMuted() {
			sm.ToggleMute()
		}
		player = sm
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator)
	view := orchestrator.Viewport()
	width, height := view.FieldSize()

	world := engine.NewWorld(cfg, engine.Options{
		Width:  width,
		Height: height,
		Strict: *debugFlag,
		Icons:  icons.IconFunc(),
	})
	system.RegisterAll(world, player)

	machine := input.NewMachine(view)

	interval := parameter.FrameUpdateInterval
	if *fps > 0 {
		interval = time.Second / time.Duration(*fps)
	}

	g := &game{
		screen:       screen,
		world:        world,
		machine:      machine,
		orchestrator: orchestrator,
		icons:        icons,
		player:       player,
		debug:        *debugFlag,
	}
	g.run(interval)
}

// game owns the main loop state
type game struct {
	screen       tcell.Screen
	world        *engine.World
	machine      *input.Machine
	orchestrator *render.RenderOrchestrator
	icons        render.IconSource
	player       system.AudioPlayer
	debug        bool
}

func (g *game) run(interval time.Duration) {
	eventChan := make(chan tcell.Event, parameter.PointerBufferSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// Screen finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handle(ev) {
				return
			}
		case <-frameTicker.C:
			snap := g.world.Tick()
			g.orchestrator.RenderFrame(render.RenderContext{
				Snapshot: &snap,
				View:     g.orchestrator.Viewport(),
				Icons:    g.icons,
				Status:   g.world.Status,
				Muted:    g.player == nil || g.player.IsMuted(),
				Debug:    g.debug,
			})
		}
	}
}

// handle applies one terminal event, returning false to quit
func (g *game) handle(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		log.Printf("quit requested")
		return false
	case input.IntentPointer:
		g.world.PushPointer(intent.Pointer)
	case input.IntentToggleMute:
		if g.player != nil {
			g.player.ToggleMute()
		}
	case input.IntentReset:
		g.world.Reset()
	case input.IntentDebug:
		g.debug = !g.debug
	case input.IntentResize:
		view := g.orchestrator.Resize()
		g.machine.SetViewport(view)
		g.world.SetBounds(view.FieldSize())
	}
	return true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
