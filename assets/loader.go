package assets

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	// Blank imports for image decoders so image.Decode can handle them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const userAgent = "liquidpixel (+https://github.com/richinsley/liquidpixel)"

type headerTransport struct {
	Transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	return t.Transport.RoundTrip(req)
}

// Loader resolves an image source, either a local path or an http(s) URL,
// to a decoded image.
type Loader struct {
	Client *http.Client
	// CacheDir holds downloaded images. Empty disables the cache.
	CacheDir string
}

// NewLoader returns a Loader using the proxy-aware default transport. With
// useCache the OS cache directory is used for downloads.
func NewLoader(useCache bool) (*Loader, error) {
	l := &Loader{
		Client: &http.Client{
			Transport: &headerTransport{Transport: http.DefaultTransport},
		},
	}
	if useCache {
		dir, err := getCacheDir("images")
		if err != nil {
			return nil, fmt.Errorf("could not get cache directory: %w", err)
		}
		l.CacheDir = dir
	}
	return l, nil
}

// Load decodes the image at src.
func (l *Loader) Load(ctx context.Context, src string) (image.Image, error) {
	if !isURL(src) {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open image %s: %w", src, err)
		}
		defer f.Close()
		img, format, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image %s: %w", src, err)
		}
		log.Printf("Loaded %s image %s (%dx%d)", format, src, img.Bounds().Dx(), img.Bounds().Dy())
		return img, nil
	}

	cachePath := ""
	if l.CacheDir != "" {
		cachePath = filepath.Join(l.CacheDir, cacheName(src))
	}

	if cachePath != "" {
		if f, err := os.Open(cachePath); err == nil {
			img, _, err := image.Decode(f)
			f.Close()
			if err == nil {
				log.Printf("Loaded cached image %s", cachePath)
				return img, nil
			}
			log.Printf("Warning: could not decode cached image %s: %v. Redownloading...", cachePath, err)
		}
	}

	data, err := l.download(ctx, src)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode downloaded image from %s: %w", src, err)
	}
	log.Printf("Downloaded %s image %s (%dx%d)", format, src, img.Bounds().Dx(), img.Bounds().Dy())

	if cachePath != "" {
		if err := os.WriteFile(cachePath, data, 0644); err != nil {
			log.Printf("Warning: failed to save image to cache at %s: %v", cachePath, err)
		}
	}
	return img, nil
}

func (l *Loader) download(ctx context.Context, src string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", src, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load image %s, status code: %d", src, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data from %s: %w", src, err)
	}
	return data, nil
}

// cacheName derives the cache file name from the full URL, so images that
// share a base name on different hosts, paths or queries do not collide.
func cacheName(src string) string {
	sum := sha256.Sum256([]byte(src))
	name := hex.EncodeToString(sum[:])
	if u, err := url.Parse(src); err == nil {
		name += path.Ext(u.Path)
	}
	return name
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// getCacheDir determines the appropriate OS-specific cache directory.
func getCacheDir(subdir string) (string, error) {
	var baseCacheDir string
	var err error

	switch runtime.GOOS {
	case "windows":
		baseCacheDir = os.Getenv("LOCALAPPDATA")
		if baseCacheDir == "" {
			err = fmt.Errorf("LOCALAPPDATA environment variable not set")
		}
	case "darwin":
		homeDir := os.Getenv("HOME")
		if homeDir == "" {
			err = fmt.Errorf("HOME environment variable not set")
		} else {
			baseCacheDir = filepath.Join(homeDir, "Library", "Caches")
		}
	default: // linux, bsd, etc.
		baseCacheDir = os.Getenv("XDG_CACHE_HOME")
		if baseCacheDir == "" {
			homeDir := os.Getenv("HOME")
			if homeDir == "" {
				err = fmt.Errorf("HOME environment variable not set")
			} else {
				baseCacheDir = filepath.Join(homeDir, ".cache")
			}
		}
	}

	if err != nil {
		return "", err
	}

	cacheDir := filepath.Join(baseCacheDir, "liquidpixel", subdir)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory at %s: %w", cacheDir, err)
	}

	return cacheDir, nil
}
