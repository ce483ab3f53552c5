package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"memory/misc"
)

// TakeScreenshot saves img as png in working directory
// and returns the file name.
func TakeScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	var filename = fmt.Sprintf("pic-%s.png", timeStr)

	for nameCounter := 2; ; nameCounter++ {
		exists, err := misc.CheckFileExists(filename)
		if err != nil {
			return "", fmt.Errorf("screenshot %s: %w", filename, err)
		}
		if !exists {
			break
		}
		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	img.ReadPixels(rgba.Pix)

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, rgba); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}

	return filename, nil
}
