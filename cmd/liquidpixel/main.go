package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	assets "github.com/richinsley/liquidpixel/assets"
	effect "github.com/richinsley/liquidpixel/effect"
	encoder "github.com/richinsley/liquidpixel/encoder"
	"github.com/richinsley/liquidpixel/glfwcontext"
	inputs "github.com/richinsley/liquidpixel/inputs"
	options "github.com/richinsley/liquidpixel/options"
	pointer "github.com/richinsley/liquidpixel/pointer"
	renderer "github.com/richinsley/liquidpixel/renderer"
)

func init() {
	runtime.LockOSThread()
}

func parseOptions() *options.Options {
	opts := &options.Options{
		Image:      flag.String("image", "", "Path or http(s) URL of the image (from LIQUIDPIXEL_IMAGE env var if not set)"),
		Variant:    flag.String("variant", "interactive", "Effect variant: interactive or static"),
		Filter:     flag.String("filter", "nearest", "Texture filter: nearest, linear or mipmap"),
		PixelSize:  flag.Float64("pixel-size", effect.DefaultPixelSize, "Initial pixel cell size of the reveal"),
		NoCache:    flag.Bool("no-cache", false, "Do not cache downloaded images"),
		Help:       flag.Bool("help", false, "Show help message"),
		Width:      flag.Int("width", 1280, "Width of the window or output"),
		Height:     flag.Int("height", 720, "Height of the window or output"),
		Record:     flag.Bool("record", false, "Render offscreen and record to a video file"),
		Duration:   flag.Float64("duration", 5.0, "Duration to record in seconds"),
		FPS:        flag.Int("fps", 60, "Frames per second for recording"),
		OutputFile: flag.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath: flag.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:      flag.String("codec", "h264", "Video codec for recording: h264 or hevc"),
	}
	flag.Parse()

	if *opts.Image == "" {
		*opts.Image = os.Getenv("LIQUIDPIXEL_IMAGE")
	}
	return opts
}

func run(ctx context.Context, opts *options.Options) error {
	variant, err := effect.ParseVariant(*opts.Variant)
	if err != nil {
		return err
	}
	filter, err := inputs.ParseFilter(*opts.Filter)
	if err != nil {
		return err
	}
	if filter != inputs.FilterNearest {
		log.Printf("Warning: %s filtering blurs the pixel blocks", filter)
	}

	loader, err := assets.NewLoader(!*opts.NoCache)
	if err != nil {
		return err
	}
	img, err := loader.Load(ctx, *opts.Image)
	if err != nil {
		return err
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	tracker := pointer.NewTracker()
	stage := effect.NewStage(variant, *opts.PixelSize, tracker)

	// If recording, the window will be hidden (headless mode)
	var sink glfwcontext.PointerSink
	if !*opts.Record {
		sink = tracker
	}
	glctx, err := glfwcontext.New(opts, !*opts.Record, sink)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer glctx.Shutdown()

	r, err := renderer.NewRenderer(glctx, stage)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	if err := r.InitScene(img, filter); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	if *opts.Record {
		log.Println("Starting offscreen render loop...")
		cfg := encoder.Config{
			Width:      *opts.Width,
			Height:     *opts.Height,
			FPS:        *opts.FPS,
			OutputFile: *opts.OutputFile,
			FFMPEGPath: *opts.FFMPEGPath,
			Codec:      *opts.Codec,
		}
		if err := r.RunOffscreen(ctx, cfg, *opts.Duration); err != nil {
			return fmt.Errorf("offscreen rendering failed: %w", err)
		}
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
		return nil
	}

	glctx.RegisterKeyCallback(glfw.KeyR, r.Replay)

	log.Printf("Starting interactive render loop (%s variant), press R to replay the reveal...", variant)
	r.Run()
	return nil
}

func main() {
	opts := parseOptions()

	if *opts.Help {
		fmt.Println("Liquid pixel image viewer/recorder")
		flag.PrintDefaults()
		return
	}
	if *opts.Image == "" {
		log.Fatalf("No image given; use -image or set LIQUIDPIXEL_IMAGE")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
