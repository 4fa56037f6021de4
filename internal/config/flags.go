package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var flags = newFlagSet(filepath.Base(os.Args[0]))

var (
	flagConfig     = flags.String("config", "", "Path to config file")
	flagSaveConfig = flags.Bool("save-config", false, "Write the effective config to the user config dir")
	flagDebug      = flags.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flags.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flags.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flags.Int("width", 0, "Window width")
	flagHeight     = flags.Int("height", 0, "Window height")
	flagSeed       = flags.Uint64("seed", 0, "Seed for vertex colors (0 = random)")
	flagLogFile    = flags.String("log-file", "", "Write logs to this file as well")
)

// positional holds the non-flag arguments from the last ParseFlags.
var positional []string

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	return fs
}

// The Usage hook is wired in init to avoid an initialization cycle
// (flags -> newFlagSet -> Usage -> flags).
func init() {
	flags.Usage = func() { Usage(flags.Output()) }
}

// Usage prints the command line help.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <number_of_vertices>\n", flags.Name())
	fmt.Fprintln(w, "  number_of_vertices  whole number >= 3; flags may come before or after it.")
	fmt.Fprintln(w, "                      Trailing junk is rejected: \"5abc\" is not 5.")
	fmt.Fprintln(w, "Flags:")
	out := flags.Output()
	flags.SetOutput(w)
	flags.PrintDefaults()
	flags.SetOutput(out)
}

// ParseFlags parses command-line arguments (without the program name).
// Flags and the vertex count may appear in any order; numeric tokens such
// as "-1" are kept as positional arguments rather than read as flags.
// On error the message and usage have already been printed.
func ParseFlags(args []string) error {
	flagArgs, rest := splitArgs(flags, args)
	if err := flags.Parse(flagArgs); err != nil {
		return err
	}
	positional = rest
	return nil
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return positional
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// splitArgs separates flag tokens (with their values) from positional ones.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return flagArgs, append(rest, args[i+1:]...)
		case a == "-" || !strings.HasPrefix(a, "-") || isNumber(a):
			rest = append(rest, a)
			continue
		}

		flagArgs = append(flagArgs, a)
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		// A non-boolean flag written as "-name value" consumes the next token
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, rest
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
