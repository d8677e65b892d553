package renderer

import (
	"context"
	"fmt"
	"log"

	encoder "github.com/richinsley/liquidpixel/encoder"
	inputs "github.com/richinsley/liquidpixel/inputs"
	"golang.org/x/sync/errgroup"
)

const numBuffers = 3 // frames in flight between renderer and encoder

// RunOffscreen renders duration seconds at cfg.FPS into an offscreen
// framebuffer and streams the frames to the encoder. It must be called on the
// thread that owns the GL context; the encoder runs on its own goroutine.
func (r *Renderer) RunOffscreen(ctx context.Context, cfg encoder.Config, duration float64) error {
	offscreen, err := NewOffscreenRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer offscreen.Destroy()

	totalFrames := int(duration * float64(cfg.FPS))
	log.Printf("Recording %d frames at %d fps to %s", totalFrames, cfg.FPS, cfg.OutputFile)

	frames := make(chan *encoder.Frame, numBuffers)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return encoder.Encode(gctx, cfg, frames)
	})

	var renderErr error
render:
	for i := 0; i < totalFrames; i++ {
		offscreen.Bind()
		r.RenderFrame(cfg.Width, cfg.Height)
		offscreen.Unbind()

		img := inputs.FlipRows(offscreen.ReadPixels(), cfg.Width, cfg.Height)

		select {
		case frames <- &encoder.Frame{Pixels: img.Pix, PTS: int64(i)}:
		case <-gctx.Done():
			renderErr = gctx.Err()
			break render
		}

		if (i+1)%cfg.FPS == 0 {
			log.Printf("Rendered %d/%d frames", i+1, totalFrames)
		}
	}
	close(frames)

	if err := g.Wait(); err != nil {
		return err
	}
	return renderErr
}
