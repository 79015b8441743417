package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/imageio"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// Options are the command line settings; zero values defer to the scene
type Options struct {
	Scene   string
	Output  string
	Quiet   bool
	Config  renderer.Config
	SeedSet bool // -seed was given explicitly, so seed 0 is usable
}

func parseFlags(args []string, stderr io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.Scene, "scene", "two-spheres", "Scene to render")
	fs.StringVar(&opts.Output, "o", "", "Output file (.ppm or .png); empty or '-' writes PPM to stdout")
	fs.BoolVar(&opts.Quiet, "quiet", false, "Suppress progress output")
	fs.IntVar(&opts.Config.Width, "width", 0, "Image width (0 = scene default)")
	fs.IntVar(&opts.Config.Height, "height", 0, "Image height (0 = scene default)")
	fs.IntVar(&opts.Config.SamplesPerPixel, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.Config.MaxDepth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	fs.Int64Var(&opts.Config.Seed, "seed", 0, "Random seed (default: the scene's own)")
	fs.IntVar(&opts.Config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.Float64Var(&opts.Config.Gamma, "gamma", 0, "Display gamma (0 = scene default)")
	help := fs.Bool("help", false, "Show help information")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Stochastic Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stderr, "  %-15s %s\n", info.ID, info.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *help {
		fs.Usage()
		return opts, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.SeedSet = true
		}
	})
	return opts, nil
}

// run renders the selected scene. Only the image goes to stdout; progress goes to stderr.
func run(ctx context.Context, opts Options, stdout, stderr io.Writer) error {
	var logger core.Logger = log.New(stderr, "", 0)
	if opts.Quiet {
		logger = core.DiscardLogger()
	}

	seed := opts.Config.Seed
	if seed == 0 && !opts.SeedSet {
		seed = renderer.DefaultConfig().Seed
	}
	s, err := scene.Create(opts.Scene, seed)
	if err != nil {
		return err
	}
	if opts.SeedSet {
		// MergeConfig cannot carry a zero seed
		s.Config.Seed = seed
	}

	raytracer, err := s.NewRaytracer(opts.Config, logger)
	if err != nil {
		return err
	}
	config := raytracer.Config()

	out, err := imageio.Open(opts.Output, stdout)
	if err != nil {
		return err
	}
	defer out.Close()

	logger.Printf("Rendering %s: %dx%d, %d samples, depth %d", s.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth)

	stats, err := raytracer.Render(ctx, out)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("error closing output: %w", err)
	}

	logger.Printf("Done: %v", stats)
	if opts.Output != "" && opts.Output != "-" {
		logger.Printf("Render saved as %s", opts.Output)
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if err := run(context.Background(), opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
