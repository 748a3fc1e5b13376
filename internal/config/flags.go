package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consulted when a flag is not given.
const (
	EnvOptions = "MINIWHEEL_OPTIONS"
	EnvSeed    = "MINIWHEEL_SEED"
	EnvMute    = "MINIWHEEL_MUTE"
	EnvTrace   = "MINIWHEEL_TRACE"
)

// Flags holds the command-line settings for one run.
type Flags struct {
	// Options replaces the default labels when non-empty.
	Options []string
	// Seed makes spins reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
	// Mute starts with sound off regardless of the saved preference.
	Mute  bool
	Trace bool
}

// ParseFlags parses args, falling back to environment variables and to a
// .env file in the working directory for anything not given on the command
// line.
func ParseFlags(args []string) (Flags, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	var (
		f       Flags
		options string
		seed    string
	)
	fs := flag.NewFlagSet("miniwheel", flag.ContinueOnError)
	fs.StringVar(&options, "options", "", "comma-separated option labels")
	fs.StringVar(&seed, "seed", "", "random seed for reproducible spins")
	fs.BoolVar(&f.Mute, "mute", false, "start with sound muted")
	fs.BoolVar(&f.Trace, "trace", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if !set["options"] {
		options = os.Getenv(EnvOptions)
	}
	f.Options = SplitOptions(options)

	if !set["seed"] {
		seed = os.Getenv(EnvSeed)
	}
	if s := strings.TrimSpace(seed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Flags{}, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		f.Seed, f.HasSeed = v, true
	}

	if !set["mute"] {
		v, err := envBool(EnvMute)
		if err != nil {
			return Flags{}, err
		}
		f.Mute = v
	}
	if !set["trace"] {
		v, err := envBool(EnvTrace)
		if err != nil {
			return Flags{}, err
		}
		f.Trace = v
	}
	if len(f.Options) == 1 {
		return Flags{}, errors.New("options need at least two labels")
	}
	return f, nil
}

// SplitOptions splits a comma-separated label list, trimming blanks.
func SplitOptions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envBool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
