package encoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered video frame's data, ready for encoding.
// Pixels are tightly packed top-down RGBA.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Config describes the raw input stream and the encoded output.
type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFMPEGPath string
	Codec      string // "h264" (default) or "hevc"
}

func (c Config) frameSize() int {
	return c.Width * c.Height * 4
}

// InputArgs describes the raw RGBA stream written to ffmpeg's stdin.
func InputArgs(c Config) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", c.Width, c.Height),
		"framerate": c.FPS,
	}
}

// OutputArgs selects the software encoder for the configured codec.
func OutputArgs(c Config) ffmpeg.KwArgs {
	outputArgs := ffmpeg.KwArgs{
		"pix_fmt":         "yuv420p",
		"color_primaries": "bt709",
		"color_trc":       "bt709",
		"colorspace":      "bt709",
		"b:v":             "25M",
	}
	if c.Codec == "hevc" {
		outputArgs["c:v"] = "libx265"
		if strings.EqualFold(filepath.Ext(c.OutputFile), ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	} else {
		outputArgs["c:v"] = "libx264"
	}
	return outputArgs
}

// Encode consumes frames until the channel is closed or ctx is done and
// writes them to c.OutputFile through an ffmpeg process. Frames of the wrong
// size are rejected.
func Encode(ctx context.Context, c Config, frames <-chan *Frame) error {
	if c.Width <= 0 || c.Height <= 0 || c.FPS <= 0 {
		return fmt.Errorf("invalid encoder config %dx%d@%d", c.Width, c.Height, c.FPS)
	}

	pipeReader, pipeWriter := io.Pipe()
	ffmpegCmd := ffmpeg.Input("pipe:", InputArgs(c)).
		Output(c.OutputFile, OutputArgs(c)).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if c.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(c.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
loop:
	for {
		select {
		case <-ctx.Done():
			writeErr = ctx.Err()
			break loop
		case frame, ok := <-frames:
			if !ok {
				break loop
			}
			if len(frame.Pixels) != c.frameSize() {
				writeErr = fmt.Errorf("frame %d has %d bytes, want %d", frame.PTS, len(frame.Pixels), c.frameSize())
				break loop
			}
			if _, err := pipeWriter.Write(frame.Pixels); err != nil {
				writeErr = fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
				break loop
			}
		}
	}

	pipeWriter.Close()
	runErr := <-errc
	// A closed pipe only means ffmpeg went away; its own error says why.
	if runErr != nil && (writeErr == nil || errors.Is(writeErr, io.ErrClosedPipe)) {
		return fmt.Errorf("ffmpeg failed: %w", runErr)
	}
	if writeErr != nil {
		return writeErr
	}
	log.Printf("Encoder finished writing %s", c.OutputFile)
	return nil
}
