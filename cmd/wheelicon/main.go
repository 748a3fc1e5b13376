// Command wheelicon writes the MiniWheel icon to disk as a PNG, or as a
// multi-size .ico for Windows packaging.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edward-ap/miniwheel/internal/wheelapp"
)

func main() {
	out := flag.String("out", "", "output file (.png or .ico)")
	size := flag.Int("size", 256, "PNG edge length in pixels")
	sizes := flag.String("sizes", "16,24,32,48,64,256", "comma-separated .ico sizes")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		os.Exit(1)
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(*out)) {
	case ".png":
		b, err := wheelapp.IconPNG(*size)
		if err != nil {
			exitErr(fmt.Errorf("render icon: %w", err))
		}
		data = b
	case ".ico":
		list, err := parseSizes(*sizes)
		if err != nil {
			exitErr(err)
		}
		images := make([][]byte, len(list))
		for i, s := range list {
			b, err := wheelapp.IconPNG(s)
			if err != nil {
				exitErr(fmt.Errorf("render %dpx icon: %w", s, err))
			}
			images[i] = b
		}
		data, err = encodeICO(list, images)
		if err != nil {
			exitErr(fmt.Errorf("encode icon: %w", err))
		}
	default:
		exitErr(fmt.Errorf("unsupported output type %q", filepath.Ext(*out)))
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		exitErr(err)
	}
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 256 {
			return nil, fmt.Errorf("invalid icon size %q", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no icon sizes given")
	}
	return out, nil
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "wheelicon: %v\n", err)
	os.Exit(1)
}
