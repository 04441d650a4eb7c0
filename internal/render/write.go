package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/litescript/ls-starchart/internal/errors"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// WriteFile writes img as a PNG at path.
//
// The image is written to a temporary file next to path and renamed into
// place, so a failed write never leaves a partial file at path. An
// existing file at path is replaced only if it is a regular file the
// caller may write. Every failure is reported as an IOWriteError.
func WriteFile(path string, img image.Image) (err error) {
	if err := checkTarget(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewIOWriteError("create", path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err := EncodePNG(buf, img); err != nil {
		return errors.NewIOWriteError("encode", path, err)
	}
	if err := buf.Flush(); err != nil {
		return errors.NewIOWriteError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewIOWriteError("write", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return errors.NewIOWriteError("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.NewIOWriteError("move", path, err)
	}
	return nil
}

// checkTarget rejects an existing path that is not a writable regular file.
// The rename in WriteFile would otherwise replace it regardless of its mode.
func checkTarget(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.NewIOWriteError("open", path, err)
	}
	if !info.Mode().IsRegular() {
		return errors.NewIOWriteError("open", path, fmt.Errorf("not a regular file"))
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errors.NewIOWriteError("open", path, err)
	}
	return f.Close()
}
