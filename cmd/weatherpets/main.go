package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/audio"
	"github.com/lixenwraith/weatherpets/config"
	"github.com/lixenwraith/weatherpets/constant"
	debugsrv "github.com/lixenwraith/weatherpets/debug"
	"github.com/lixenwraith/weatherpets/engine"
	"github.com/lixenwraith/weatherpets/geo"
	"github.com/lixenwraith/weatherpets/input"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/mode"
	"github.com/lixenwraith/weatherpets/render"
	"github.com/lixenwraith/weatherpets/status"
	"github.com/lixenwraith/weatherpets/weather"
)

var (
	envFile   = flag.String("env", ".env", "Optional env file")
	seedFlag  = flag.Uint64("seed", 0, "Fix all random sources (0 = clock)")
	debugAddr = flag.String("debug-addr", "", "Serve /metrics, /healthz and /pets on this address")
	logFile   = flag.String("log", "", "Log file name under the log directory (empty = disabled)")
	unitsFlag = flag.String("units", "", "Initial units: metric or imperial")
	noAudio   = flag.Bool("no-audio", false, "Disable sound output")
	fpsFlag   = flag.Int("fps", 0, "Frame rate")
	keymap    = flag.String("keymap", "", "Key overrides, e.g. \"x=quit,b=none\"")
)

func main() {
	// Panic Recovery: ensure the terminal is reset even if setup crashes
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWEATHERPETS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	applyFlags(cfg)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	runID := uuid.NewString()
	log, logCloser, err := logging.Setup(cfg.Logging())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	log = log.With(logging.String("run_id", runID))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Engine goroutines restore the screen before reporting a panic
	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		// \r\n for raw mode compatibility
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mWEATHERPETS CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	metrics := status.NewRegistry()
	rngFor := newRandSource(cfg.Seed)

	feed := weather.NewFeed(weather.FeedConfig{
		Interval: cfg.Feed.Interval,
		Rand:     rngFor(1),
		Logger:   log,
		Metrics:  metrics,
	})

	geoClient := geo.NewClient(cfg.GeoClient(runID))
	geoLoader := geo.NewLoader(geoClient, cfg.Geo.URL, log, metrics)

	loop := engine.NewLoop(screen, engine.NewMonotonicTimeProvider(), cfg.FrameInterval(), metrics)

	output := openOutput(ctx, cfg, log)
	a := app.New(app.Config{
		Feed:       feed,
		Geo:        geoLoader,
		Scheduler:  loop.Scheduler(),
		Output:     output,
		Active:     cfg.Pets.Active,
		Settings:   cfg.Settings(),
		AutoRotate: cfg.Pets.AutoRotate,
		Volume:     cfg.Audio.Volume,
		Rand:       rngFor(2),
		Logger:     log,
		Metrics:    metrics,
	})
	defer a.Close()

	orchestrator := render.NewDefaultOrchestrator(screen)
	router := mode.NewRouter(a, input.NewMachine(keys), log)
	router.Resize(screen.Size())

	loop.SetEventHandler(func(ev tcell.Event) bool {
		if _, ok := ev.(*tcell.EventResize); ok {
			orchestrator.Resize()
		}
		return router.HandleEvent(ev)
	})
	loop.OnFrame(func(now time.Time, dt time.Duration) {
		a.Tick(now, dt)
		w, h := screen.Size()
		orchestrator.RenderFrame(render.NewContext(a, w, h, orchestrator.Frames()+1, router.Searching()))
	})

	log.Info(ctx, "weatherpets starting",
		logging.Int("pets", len(a.Pets())),
		logging.Any("frame_interval", cfg.FrameInterval()),
		logging.String("geo_url", cfg.Geo.URL),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer engine.Recover()
		// Quitting from the keyboard ends every other worker
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer engine.Recover()
		return feed.Run(gctx)
	})
	g.Go(func() error {
		defer engine.Recover()
		return geoLoader.Load(gctx)
	})
	if cfg.DebugAddr != "" {
		srv := debugsrv.NewServer(debugsrv.Config{
			Addr:    cfg.DebugAddr,
			Source:  a,
			Metrics: metrics,
			RunID:   runID,
			Logger:  log,
		})
		g.Go(func() error {
			defer engine.Recover()
			return srv.Run(gctx)
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(context.Background(), "weatherpets stopped with error", logging.Err(err))
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Info(context.Background(), "weatherpets stopped")
	return 0
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug-addr":
			cfg.DebugAddr = *debugAddr
		case "log":
			cfg.Log.File = *logFile
		case "units":
			cfg.Pets.Units = *unitsFlag
		case "no-audio":
			cfg.Audio.Enabled = !*noAudio
		case "fps":
			cfg.Frame.Rate = *fpsFlag
		case "keymap":
			cfg.Keymap = *keymap
		}
	})
}

// newRandSource returns independent seeded generators per stream, or clock-seeded ones for seed 0
func newRandSource(seed uint64) func(stream uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return func(stream uint64) *rand.Rand {
		return rand.New(rand.NewPCG(seed, stream))
	}
}

// openOutput opens the speaker, falling back to a silent buffer
func openOutput(ctx context.Context, cfg *config.Config, log logging.Logger) audio.Output {
	if !cfg.Audio.Enabled {
		return audio.NewBufferOutput()
	}
	out, err := audio.NewSpeakerOutput(beep.SampleRate(constant.RadioSampleRate))
	if err != nil {
		log.Warn(ctx, "audio unavailable, continuing without sound", logging.Err(err))
		return audio.NewBufferOutput()
	}
	return out
}
