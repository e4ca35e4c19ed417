// Command dmgcore runs a Game Boy ROM headless, optionally tracing every
// instruction and serving snapshots to websocket viewers.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/internal/trace"
	"github.com/thelolagemann/dmgcore/internal/web"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/romfile"
	"golang.org/x/term"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .xz, .zip or .7z)")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	steps := flag.Uint64("steps", 0, "The number of steps to run, 0 runs until interrupted")
	traceFile := flag.String("trace", "", "Write an instruction trace to this file")
	traceCompress := flag.Bool("trace-compress", false, "Brotli compress the instruction trace")
	monitor := flag.String("monitor", "", "Serve snapshots over websockets on this address, e.g. :8090")
	monitorEvery := flag.Uint64("monitor-every", 70224/4, "The number of steps between snapshots")
	serial := flag.Bool("serial", false, "Print bytes sent over the serial port to stdout")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := logrus.InfoLevel
	if *verbose {
		level = logrus.DebugLevel
	}
	logger := log.New(log.Options{
		Output: os.Stderr,
		Level:  level,
		Colors: term.IsTerminal(int(os.Stderr.Fd())),
	})

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(logger, config{
		rom:           *romFile,
		boot:          *bootROM,
		steps:         *steps,
		trace:         *traceFile,
		traceCompress: *traceCompress,
		monitor:       *monitor,
		monitorEvery:  *monitorEvery,
		serial:        *serial,
	}); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type config struct {
	rom, boot     string
	steps         uint64
	trace         string
	traceCompress bool
	monitor       string
	monitorEvery  uint64
	serial        bool
}

// run loads the ROM and steps it until the step budget is used up, a
// signal arrives or the CPU faults. Interruption is not an error.
func run(l log.Logger, cfg config) error {
	rom, err := romfile.Load(cfg.rom)
	if err != nil {
		return fmt.Errorf("unable to load rom: %w", err)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(l)}
	if cfg.boot != "" {
		boot, err := romfile.Load(cfg.boot)
		if err != nil {
			return fmt.Errorf("unable to load boot rom: %w", err)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}

	if cfg.trace != "" {
		f, err := os.Create(cfg.trace)
		if err != nil {
			return fmt.Errorf("unable to create trace file: %w", err)
		}
		defer f.Close()

		tracer := trace.New(f, cfg.traceCompress)
		defer func() {
			if err := tracer.Close(); err != nil {
				l.Errorf("unable to flush trace: %v", err)
			}
		}()
		opts = append(opts, gameboy.WithTracer(tracer))
	}

	if cfg.serial {
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()
		opts = append(opts, gameboy.WithSerialOutput(out))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.monitor != "" {
		hub := web.NewHub(l)
		go hub.Run(ctx)

		srv := &http.Server{Addr: cfg.monitor, Handler: hub}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.Errorf("monitor: %v", err)
			}
		}()
		defer func() {
			shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(shutdown)
		}()
		l.Infof("serving snapshots on %s", cfg.monitor)

		every := cfg.monitorEvery
		if every == 0 {
			every = 1
		}
		opts = append(opts, gameboy.WithStepHook(func(gb *gameboy.GameBoy) {
			if gb.Steps()%every != 0 {
				return
			}
			frame, _ := gb.Snapshot().MarshalBinary()
			hub.Publish(frame)
		}))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	err = gb.Run(ctx, cfg.steps)
	l.Infof("stopped after %d steps in %s at %04X", gb.Steps(), time.Since(start).Round(time.Millisecond), gb.CPU.PC)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
