package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/logging"
	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/menu"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/renderer/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer log.Sync()

	if err := i18n.Use(cfg.Lang); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	bank, err := loadBank(cfg.Clues)
	if err != nil {
		log.Error("load clues", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}

	g := gameplay.BuildGame(bank, cfg.Seed, log)

	if cfg.DumpMap {
		if err := devtools.DumpGraph(stdout, g); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	r := tui.New(stdout)
	r.Init()
	r.NoColor = cfg.NoColor || !terminal.IsInteractive()
	r.Clear()
	r.Emit(renderer.Event{Kind: renderer.EventWelcome})

	in := input.NewReader(stdin)
	n, err := menu.ChooseEntrance(in, r, g)
	if err != nil {
		if errors.Is(err, input.ErrClosed) {
			r.Emit(renderer.Event{Kind: renderer.EventInputClosed, Score: g.Score})
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	e := gameplay.NewEngine(g, in, r, log)
	e.Start(n)
	if err := e.Run(); err != nil && !errors.Is(err, input.ErrClosed) {
		log.Error("game aborted", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.Info("game over", zap.String("phase", g.Phase().String()), zap.Int("score", g.Score))
	return 0
}

func loadBank(path string) (*clues.Bank, error) {
	if path == "" {
		return clues.Default()
	}
	return clues.LoadFile(path)
}
