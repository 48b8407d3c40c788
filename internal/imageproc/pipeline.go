// Package imageproc turns an uploaded task image into the stored form:
// bounded in size, encoded as JPEG and named with a random UUID.
package imageproc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io"
	"path"
	"strings"

	// decoders registered for image.Decode
	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned when the upload is not a readable image
var ErrDecode = errors.New("uploaded file is not a valid image")

const (
	FormatJPEG = "jpeg"

	// DefaultQuality is the JPEG quality used when none is configured
	DefaultQuality = 90

	// DefaultMaxPixels bounds width*height of an upload before it is decoded
	DefaultMaxPixels = 40_000_000
)

// Image is the in-memory state a Step transforms
type Image struct {
	Img     image.Image
	Format  string // decoder name, "jpeg" after conversion
	Name    string // file name including extension
	Data    []byte // encoded bytes matching Img and Format
	Changed bool   // Img no longer matches Data
}

// Step is one stage of the pipeline
type Step interface {
	Name() string
	Apply(img *Image) error
}

// ResizeStep shrinks the image so its longest side is at most MaxSide, keeping the aspect ratio
type ResizeStep struct {
	MaxSide int
}

func (s ResizeStep) Name() string { return "resize" }

func (s ResizeStep) Apply(img *Image) error {
	b := img.Img.Bounds()
	if s.MaxSide <= 0 || max(b.Dx(), b.Dy()) <= s.MaxSide {
		return nil
	}
	img.Img = imaging.Fit(img.Img, s.MaxSide, s.MaxSide, imaging.Lanczos)
	img.Changed = true
	return nil
}

// ConvertStep encodes the image as JPEG, flattening transparency onto white
type ConvertStep struct {
	Quality int
}

func (s ConvertStep) Name() string { return "convert" }

func (s ConvertStep) Apply(img *Image) error {
	if img.Format == FormatJPEG && !img.Changed {
		img.Name = replaceExt(img.Name, ".jpg")
		return nil
	}

	quality := s.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flatten(img.Img), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}

	img.Data = buf.Bytes()
	img.Format = FormatJPEG
	img.Name = replaceExt(img.Name, ".jpg")
	img.Changed = false
	return nil
}

// flatten draws img onto an opaque white canvas, dropping alpha and palette
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// RenameStep gives the file a random UUID name, keeping the extension
type RenameStep struct {
	NewID func() uuid.UUID
}

func (s RenameStep) Name() string { return "rename" }

func (s RenameStep) Apply(img *Image) error {
	newID := s.NewID
	if newID == nil {
		newID = uuid.New
	}
	ext := path.Ext(img.Name)
	if ext == "" {
		ext = ".jpg"
	}
	img.Name = newID().String() + strings.ToLower(ext)
	return nil
}

// Pipeline runs its steps in order
type Pipeline struct {
	steps     []Step
	maxPixels int64
}

// NewPipeline builds a pipeline from explicit steps
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps, maxPixels: DefaultMaxPixels}
}

// WithMaxPixels sets the largest width*height accepted for decoding. Zero or less disables the check.
func (p *Pipeline) WithMaxPixels(n int64) *Pipeline {
	p.maxPixels = n
	return p
}

// Default returns resize, convert and rename in that order
func Default(maxSide, quality int) *Pipeline {
	return NewPipeline(
		ResizeStep{MaxSide: maxSide},
		ConvertStep{Quality: quality},
		RenameStep{},
	)
}

// Steps returns the step names in execution order
func (p *Pipeline) Steps() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name())
	}
	return names
}

// Result is the processed image ready to be committed to storage
type Result struct {
	Name        string
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// Process decodes r and applies every step. Nothing is written anywhere;
// the caller decides whether to commit the result.
func (p *Pipeline) Process(ctx context.Context, r io.Reader, originalName string) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if p.maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > p.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrDecode, cfg.Width, cfg.Height, p.maxPixels)
	}

	decoded, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img := &Image{
		Img:    decoded,
		Format: format,
		Name:   path.Base(strings.ReplaceAll(originalName, "\\", "/")),
		Data:   raw,
	}

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.Apply(img); err != nil {
			return nil, fmt.Errorf("image %s step failed: %w", step.Name(), err)
		}
	}

	if img.Changed {
		return nil, fmt.Errorf("image pipeline finished without encoding the transformed image")
	}

	b := img.Img.Bounds()
	return &Result{
		Name:        img.Name,
		Data:        img.Data,
		ContentType: contentType(img.Format),
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

func contentType(format string) string {
	if format == FormatJPEG {
		return "image/jpeg"
	}
	return "image/" + format
}

func replaceExt(name, ext string) string {
	if name == "" || name == "." || name == "/" {
		return "image" + ext
	}
	return strings.TrimSuffix(name, path.Ext(name)) + ext
}
