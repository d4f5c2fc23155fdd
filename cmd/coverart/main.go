package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/wbrown/coverart"
	"github.com/wbrown/coverart/imageutil"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("coverart: ")

	var inputs inputList
	flag.Var(&inputs, "input",
		"Path or http(s) URL of the input image (required, repeatable)")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout); "+
			"a .png path writes a rendered preview")
	configFile := flag.String("config", "",
		"Optional YAML config file (keys: width, height_scale, colorize, interpolation)")
	targetWidth := flag.Int("width", coverart.DefaultTargetWidth,
		"Target width of the output in characters")
	heightScale := flag.Float64("scale", coverart.DefaultHeightScale,
		"Height scale factor compensating for tall terminal cells")
	colorMode := flag.String("color", "auto",
		"Color output: auto, always, or never")
	interpolation := flag.String("interp", "cubic",
		"Resampling kernel: cubic, linear, or nearest")
	pngScale := flag.Int("pngscale", 1,
		"Font scaling factor for PNG output")
	timeout := flag.Duration("timeout", coverart.DefaultTimeout,
		"Timeout for fetching a remote image")
	compact := flag.Bool("compact", false,
		"Merge adjacent glyphs of the same color into one escape sequence")
	jobs := flag.Int("jobs", 4,
		"Maximum concurrent renders when several inputs are given")
	verbose := flag.Bool("v", false,
		"Print timing information to stderr")
	flag.Parse()

	if len(inputs) == 0 {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := coverart.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = coverart.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	// Explicit flags override the config file
	colorSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.TargetWidth = *targetWidth
		case "scale":
			cfg.HeightScale = *heightScale
		case "interp":
			interp, ok := imageutil.ParseInterpolation(*interpolation)
			if !ok {
				log.Fatalf("Invalid interpolation %q, options are cubic, linear, or nearest", *interpolation)
			}
			cfg.Interpolation = interp
		case "color":
			colorSet = true
		}
	})

	switch strings.ToLower(*colorMode) {
	case "always":
		cfg.Colorize = true
	case "never":
		cfg.Colorize = false
	case "auto":
		// A config file choice wins over auto-detection unless -color was given
		if colorSet || *configFile == "" {
			cfg.Colorize = *outputFile != "" || term.IsTerminal(int(os.Stdout.Fd()))
		}
	default:
		log.Fatalf("Invalid color mode %q, options are auto, always, or never", *colorMode)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	c := coverart.NewCover()
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if len(inputs) > 1 {
		renderBatch(ctx, c, inputs, *outputFile, *jobs, *compact, *verbose)
		return
	}

	begin := time.Now()
	src := coverart.SourceFor(inputs[0])

	if *outputFile != "" && strings.HasSuffix(strings.ToLower(*outputFile), ".png") {
		img, err := c.Preview(ctx, src, *pngScale)
		if err != nil {
			fail(c, err, *verbose)
		}
		if err := imageutil.SavePNG(img, *outputFile); err != nil {
			log.Fatalf("Error writing PNG: %v", err)
		}
		fmt.Printf("PNG output written to %s\n", *outputFile)
		return
	}

	block, err := c.Fetch(ctx, src)
	if err != nil {
		fail(c, err, *verbose)
	}
	if *compact {
		block = block.Compact()
	}
	endRender := time.Now()

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(block.String()+"\n"), 0644); err != nil {
			log.Fatalf("Error writing to file: %v", err)
		}
		fmt.Printf("Output written to %s\n", *outputFile)
	} else {
		fmt.Println(block)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Source: %s\n", src)
		fmt.Fprintf(os.Stderr, "Output: %dx%d, %s\n", block.Width(), block.Height(), c.Config.Mode())
		fmt.Fprintf(os.Stderr, "Fetch and render time: %v\n", endRender.Sub(begin))
		fmt.Fprintf(os.Stderr, "Total string length: %d\n", len(block))
	}
}

// fail prints the fallback message in place of art and exits with status 1.
func fail(c *coverart.Cover, err error, verbose bool) {
	fmt.Println(c.FallbackMessage())
	if verbose {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

// renderBatch renders several inputs concurrently and prints them in input
// order, separated by blank lines. It exits with status 1 when any input
// fell back.
func renderBatch(ctx context.Context, c *coverart.Cover, inputs []string, outputFile string, jobs int, compact, verbose bool) {
	if strings.HasSuffix(strings.ToLower(outputFile), ".png") {
		log.Fatalf("PNG output takes a single -input, got %d", len(inputs))
	}

	begin := time.Now()
	results := c.RenderMany(ctx, inputs, jobs)
	failed := 0
	for i, result := range results {
		if result == c.FallbackMessage() {
			failed++
			continue
		}
		if compact {
			results[i] = coverart.Block(result).Compact().String()
		}
	}
	out := strings.Join(results, "\n\n")

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out+"\n"), 0644); err != nil {
			log.Fatalf("Error writing to file: %v", err)
		}
		fmt.Printf("Output written to %s\n", outputFile)
	} else {
		fmt.Println(out)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Rendered %d of %d inputs in %v\n", len(inputs)-failed, len(inputs), time.Since(begin))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// inputList collects repeated -input flags.
type inputList []string

func (l *inputList) String() string {
	return strings.Join(*l, ",")
}

func (l *inputList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
