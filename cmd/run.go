package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chippy-core/chippy/internal/audio"
	"github.com/chippy-core/chippy/internal/backend"
	"github.com/chippy-core/chippy/internal/core"
	"github.com/chippy-core/chippy/internal/hostio"
)

const defaultClockHz = 500
const defaultScale = 16

var (
	flagBackend        string
	flagClockHz        int
	flagShiftQuirk     bool
	flagLoadStoreQuirk bool
	flagOverflowVF     bool
	flagHeadless       bool
	flagBeepPath       string
)

// runCmd runs the chippy virtual machine and waits for it to stop, either
// because the window was closed or because it faulted.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().StringVar(&flagBackend, "backend", "pixelgl", "display/keyboard backend to use (pixelgl, termbox, sdl — availability depends on build tags)")
	runCmd.Flags().IntVar(&flagClockHz, "clock-hz", defaultClockHz, "emulation cycles per second")
	runCmd.Flags().BoolVar(&flagShiftQuirk, "shift-quirk", true, "8XY6/8XYE shift Vx in place instead of copying Vy first")
	runCmd.Flags().BoolVar(&flagLoadStoreQuirk, "load-store-quirk", true, "FX55/FX65 leave I unmodified")
	runCmd.Flags().BoolVar(&flagOverflowVF, "overflow-vf", true, "FX1E leaves VF untouched on index overflow")
	runCmd.Flags().BoolVar(&flagHeadless, "headless", false, "drive the core without opening a display (for scripted ROM checks)")
	runCmd.Flags().StringVar(&flagBeepPath, "beep", "assets/beep.mp3", "path to the beep sound played when the sound timer is active")
}

func runChippy(cmd *cobra.Command, args []string) {
	romPath := args[0]

	rom, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Printf("error reading rom %q: %v\n", romPath, err)
		os.Exit(2)
	}

	opts := core.Options{
		ShiftQuirk:     flagShiftQuirk,
		LoadStoreQuirk: flagLoadStoreQuirk,
		OverflowVF:     flagOverflowVF,
		Random:         hostio.NewRand(time.Now().UnixNano()),
	}

	var closers []func()
	defer func() {
		for _, c := range closers {
			c()
		}
	}()

	if !flagHeadless {
		h, err := backend.Open(flagBackend, defaultScale)
		if err != nil {
			fmt.Printf("error opening display backend: %v\n", err)
			os.Exit(2)
		}
		opts.Display = h.Display
		opts.Keyboard = h.Keyboard
		closers = append(closers, h.Close)

		if beeper, err := audio.New(flagBeepPath); err == nil {
			opts.Sound = beeper
			closers = append(closers, beeper.Close)
		}
	}

	vm := core.NewVM(opts)
	if err := vm.Load(rom); err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(2)
	}

	if err := driveAtRate(vm, flagClockHz); err != nil {
		fmt.Printf("emulation fault: %v\n", err)
		os.Exit(3)
	}
}

// driveAtRate steps vm at clockHz cycles per second until it stops or
// faults, using hostio.Clock for pacing as the core's Clock port contract
// requires.
func driveAtRate(vm *core.VM, clockHz int) error {
	clock := hostio.Clock{}
	periodMillis := 1000 / clockHz

	for {
		if kb := vm.Keyboard(); kb != nil {
			kb.Poll()
			if kb.IsExitRequested() {
				return nil
			}
		}
		if err := vm.Step(); err != nil {
			return err
		}
		clock.SleepMillis(periodMillis)
	}
}
