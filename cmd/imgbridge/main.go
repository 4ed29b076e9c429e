package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/imgbridge/imgbridge"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version information")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
		info        = flag.Bool("info", false, "print image metadata and dominant colors, write nothing")
		resize      = flag.String("resize", "", "resize to WxH, preserving aspect ratio")
		grayscale   = flag.Bool("grayscale", false, "convert to grayscale")
		blur        = flag.Float64("blur", 0, "gaussian blur sigma")
		sharpen     = flag.Float64("sharpen", 0, "unsharp mask sigma")
		invert      = flag.Bool("invert", false, "invert colors")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imgbridge [options] <input> [output]\n\n")
		fmt.Fprintf(os.Stderr, "Loads an image, applies the requested operations, and saves the result.\n")
		fmt.Fprintf(os.Stderr, "The output format is chosen from the output file extension.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("imgbridge %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		imgbridge.SetLogger(logger)
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := args[0]

	h := imgbridge.Load(input)
	if h == 0 {
		fmt.Fprintf(os.Stderr, "failed to load %s\n", input)
		os.Exit(1)
	}
	defer imgbridge.FreeHandle(h)

	if *info {
		printInfo(h)
		return
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "output path required (or use -info)")
		os.Exit(2)
	}
	output := args[1]

	// Each transform yields a new handle; the intermediate is released as
	// soon as the next step succeeds. The original stays owned by the
	// deferred free above.
	current := h
	apply := func(name string, next imgbridge.Handle) {
		if next == 0 {
			fmt.Fprintf(os.Stderr, "%s failed\n", name)
			os.Exit(1)
		}
		if current != h {
			imgbridge.FreeHandle(current)
		}
		current = next
	}

	if *resize != "" {
		w, ht, err := parseSize(*resize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad -resize value: %v\n", err)
			os.Exit(2)
		}
		apply("resize", imgbridge.Resize(current, w, ht, imgbridge.Lanczos3))
	}
	if *blur > 0 {
		apply("blur", imgbridge.Blur(current, float32(*blur)))
	}
	if *sharpen > 0 {
		apply("sharpen", imgbridge.Sharpen(current, float32(*sharpen)))
	}
	if *grayscale {
		apply("grayscale", imgbridge.Grayscale(current))
	}
	if *invert {
		if code := imgbridge.Invert(current); code != imgbridge.Success {
			fmt.Fprintf(os.Stderr, "invert failed: %s\n", code)
			os.Exit(1)
		}
	}

	if code := imgbridge.Save(current, output); code != imgbridge.Success {
		fmt.Fprintf(os.Stderr, "save failed: %s\n", code)
		os.Exit(1)
	}
	if current != h {
		imgbridge.FreeHandle(current)
	}
}

func printInfo(h imgbridge.Handle) {
	m, code := imgbridge.GetMetadata(h)
	if code != imgbridge.Success {
		fmt.Fprintf(os.Stderr, "metadata failed: %s\n", code)
		os.Exit(1)
	}
	fmt.Printf("dimensions: %dx%d\n", m.Width, m.Height)
	fmt.Printf("color model: %d\n", m.Color)

	token, code := imgbridge.DominantColors(h, 5)
	if code != imgbridge.Success {
		return
	}
	defer imgbridge.FreeString(token)
	if colors, code := imgbridge.StringData(token); code == imgbridge.Success && colors != "" {
		fmt.Printf("dominant colors: %s\n", strings.ReplaceAll(colors, ",", " "))
	}
}

func parseSize(s string) (uint32, uint32, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WxH, got %q", s)
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("dimensions must be positive")
	}
	return uint32(width), uint32(height), nil
}
