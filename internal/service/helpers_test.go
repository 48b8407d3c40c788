package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/imageproc"
	"kanban-board-api/internal/response"
)

var testImageOptions = ImageOptions{MaxSizeBytes: 2 * 1024 * 1024, MaxSizeMB: 2}

func testPipeline() *imageproc.Pipeline {
	return imageproc.Default(64, imageproc.DefaultQuality)
}

func pngUpload(t *testing.T, width, height int) *ImageUpload {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &ImageUpload{Filename: "photo.png", Size: int64(buf.Len()), Content: bytes.NewReader(buf.Bytes())}
}

func requireAppError(t *testing.T, err error, code string) *response.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code, "unexpected error: %v", appErr)
	return appErr
}

func emptyReader() *bytes.Reader {
	return bytes.NewReader(nil)
}
