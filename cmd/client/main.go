package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/boxbench/client/game"
	"github.com/cbodonnell/boxbench/client/input"
	"github.com/cbodonnell/boxbench/client/objects"
	"github.com/cbodonnell/boxbench/pkg/collision"
	"github.com/cbodonnell/boxbench/pkg/config"
	"github.com/cbodonnell/boxbench/pkg/frame"
	"github.com/cbodonnell/boxbench/pkg/grid"
	"github.com/cbodonnell/boxbench/pkg/log"
	"github.com/cbodonnell/boxbench/pkg/session"
	"github.com/cbodonnell/boxbench/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	config.BindFlags(flag.CommandLine, &cfg)
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if err := cfg.Validate(); err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			log.Error("Invalid -%s flag: %v", configErr.Param, err)
		} else {
			log.Error("Invalid configuration: %v", err)
		}
		os.Exit(1)
	}

	boxes, err := grid.Generate(cfg.Layout())
	if err != nil {
		log.Error("Failed to generate bounding boxes: %v", err)
		os.Exit(1)
	}
	log.Info("Generated %d bounding boxes covering %s", len(boxes), boxes.Extent())

	driver := frame.NewDriver(frame.NewDriverOptions{
		Input:     input.NewSource(),
		Evaluator: collision.NewEvaluator(cfg.Workers),
		State: session.NewState(session.NewStateOptions{
			Boxes:     boxes,
			QuerySize: cfg.QuerySize,
		}),
	})

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  *debug,
		Bounds: cfg.Bounds,
		Driver: driver,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	for _, line := range objects.HelpLines {
		fmt.Println(line)
	}

	ebiten.SetWindowSize(cfg.Bounds.X, cfg.Bounds.Y)
	ebiten.SetWindowTitle("Bounding box collision")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)
	log.Debug("Target frame interval %s", cfg.FrameInterval())
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
