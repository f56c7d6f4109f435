package render

import (
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 600
	Height = 400
	margin = 24
)

var (
	face        = basicfont.Face7x13
	background  = color.NRGBA{R: 0x17, G: 0x10, B: 0x1F, A: 0xFF}
	foreground  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	trackColor  = color.NRGBA{R: 0x33, G: 0x2B, B: 0x3D, A: 0xFF}
	barColor    = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	winnerColor = color.NRGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF}
)

// TextCard 居中绘制多行文本，字体无法显示的字符会被忽略
func TextCard(text string) image.Image {
	canvas := imaging.New(Width, Height, background)

	lines := make([]string, 0, 4)
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, printable(line))
	}

	scale := fitScale(lines, Width-2*margin, Height-2*margin)
	lineH := face.Height * scale
	y := (Height - lineH*len(lines)) / 2
	for _, line := range lines {
		if line != "" {
			img := scaled(drawText(line, foreground), scale)
			canvas = imaging.Overlay(canvas, img, image.Pt((Width-img.Bounds().Dx())/2, y), 1.0)
		}
		y += lineH
	}
	return canvas
}

// Encode 输出 PNG
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// printable 只保留位图字体包含的字符
func printable(s string) string {
	var b strings.Builder
	for _, r := range s {
		if hasGlyph(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func hasGlyph(r rune) bool {
	for _, rng := range face.Ranges {
		if r >= rng.Low && r < rng.High {
			return true
		}
	}
	return false
}

func fitScale(lines []string, maxW, maxH int) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, font.MeasureString(face, line).Ceil())
	}
	scale := 4
	for scale > 1 && (widest*scale > maxW || len(lines)*face.Height*scale > maxH) {
		scale--
	}
	return scale
}

func drawText(s string, c color.Color) *image.NRGBA {
	w := max(font.MeasureString(face, s).Ceil(), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	return dst
}

func scaled(img *image.NRGBA, scale int) *image.NRGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
}
