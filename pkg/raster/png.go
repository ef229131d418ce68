package raster

import (
	"image/png"
	"io"
	"os"

	"github.com/go-drift/squircle/pkg/errors"
)

// WritePNG encodes the canvas contents as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return errors.E("raster.WritePNG", errors.KindEncode, err)
	}
	return nil
}

// SavePNG writes the canvas contents to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.E("raster.SavePNG", errors.KindEncode, err)
	}
	defer f.Close()
	if err := c.WritePNG(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.E("raster.SavePNG", errors.KindEncode, err)
	}
	return nil
}
