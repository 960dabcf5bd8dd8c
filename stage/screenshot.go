package stage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. Files are named after the actor, the number of
// executed commands and the label, so replaying a script reproduces the
// same names.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots encodes the rendered frame once and writes it under
// every queued label.
func (s *Stage) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]

	if err := os.MkdirAll(s.cfg.ScreenshotDir, 0o755); err != nil {
		s.log.WithError(err).WithField("dir", s.cfg.ScreenshotDir).Error("screenshot: create directory")
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	data, err := encodePNG(unpremultiply(pixels, b.Dx(), b.Dy()))
	if err != nil {
		s.log.WithError(err).Error("screenshot")
		return
	}

	executed := s.interp.Executed()
	for _, label := range labels {
		path := filepath.Join(s.cfg.ScreenshotDir, screenshotName(s.actor.Name, executed, label))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			s.log.WithError(err).WithField("path", path).Error("screenshot: write")
			continue
		}
		s.log.WithFields(logrus.Fields{"path": path, "executed": executed}).Info("screenshot saved")
	}
}

// screenshotName returns "<actor>_step<executed>_<label>.png" with every
// part reduced to file-name safe characters.
func screenshotName(actor string, executed int, label string) string {
	return fmt.Sprintf("%s_step%03d_%s.png", fileSafe(actor, "actor"), executed, fileSafe(label, "frame"))
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		a := pixels[i+3]
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = straight(pixels[i+c], a)
		}
		img.Pix[i+3] = a
	}
	return img
}

// straight divides a premultiplied channel by alpha.
func straight(v, a uint8) uint8 {
	if a == 0 || a == 255 {
		return v
	}
	return uint8(min(int(v)*255/int(a), 255))
}

// encodePNG encodes img into memory so one capture can be written under
// several names.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// fileSafe keeps letters, digits, '-' and '.', replaces anything else with
// '_' and returns fallback for a blank name.
func fileSafe(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, name)
}
