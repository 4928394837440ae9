package cielab

import (
	"fmt"
	"image"
	"image/color"
	"sync/atomic"

	"github.com/kovidgoyal/cielab/colorconv"
	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

// LabImage is an in-memory image storing one Lab value per pixel. At returns
// the RGB value of the pixel, so it can be used anywhere an image.Image can.
type LabImage[T Float] struct {
	// Pix holds the image's pixels. The pixel at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []Lab[T]
	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
	Rect   image.Rectangle
}

func NewLabImage[T Float](r image.Rectangle) *LabImage[T] {
	return &LabImage[T]{
		Pix:    make([]Lab[T], r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *LabImage[T]) ColorModel() color.Model { return RGBModel }

func (p *LabImage[T]) Bounds() image.Rectangle { return p.Rect }

func (p *LabImage[T]) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return RGB{}
	}
	return p.Pix[p.PixOffset(x, y)].RGB()
}

func (p *LabImage[T]) LabAt(x, y int) Lab[T] {
	if !(image.Point{x, y}.In(p.Rect)) {
		return Lab[T]{}
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *LabImage[T]) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *LabImage[T]) Set(x, y int, c color.Color) {
	var lab Lab[T]
	switch q := c.(type) {
	case Lab[T]:
		lab = q
	case XYZ[T]:
		lab = q.Lab()
	default:
		lab = RGBToLab[T](RGBModel.Convert(c).(RGB))
	}
	p.SetLab(x, y, lab)
}

func (p *LabImage[T]) SetLab(x, y int, c Lab[T]) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *LabImage[T]) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &LabImage[T]{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &LabImage[T]{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

func (p *LabImage[T]) Opaque() bool { return true }

// channels larger than alpha are invalid premultiplied data, saturate them
func unpremultiply8(r, a uint8) uint8 {
	return uint8(min((uint16(r)*0xff)/uint16(a), 0xff))
}

// LabImageFrom converts img to Lab, spreading rows over all CPUs. Alpha is
// discarded, colors are un-premultiplied first. Fully transparent pixels
// become black.
func LabImageFrom[T Float](img image.Image) (ans *LabImage[T], err error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = NewLabImage[T](b)
	if width == 0 || height == 0 {
		return ans, nil
	}
	var f func(start, limit int)
	switch src := img.(type) {
	case *NRGB:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y:]
				_ = row[3*(width-1)]
				drow := ans.Pix[ans.Stride*y : ans.Stride*y+width]
				for x := range drow {
					s := row[0:3:3]
					drow[x] = RGBToLab[T](RGB{s[0], s[1], s[2]})
					row = row[3:]
				}
			}
		}
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y:]
				_ = row[4*(width-1)]
				drow := ans.Pix[ans.Stride*y : ans.Stride*y+width]
				for x := range drow {
					s := row[0:4:4]
					var c RGB
					if s[3] != 0 {
						c = RGB{s[0], s[1], s[2]}
					}
					drow[x] = RGBToLab[T](c)
					row = row[4:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y:]
				_ = row[4*(width-1)]
				drow := ans.Pix[ans.Stride*y : ans.Stride*y+width]
				for x := range drow {
					s := row[0:4:4]
					var c RGB
					switch a := s[3]; a {
					case 0xff:
						c = RGB{s[0], s[1], s[2]}
					case 0:
					default:
						c = RGB{unpremultiply8(s[0], a), unpremultiply8(s[1], a), unpremultiply8(s[2], a)}
					}
					drow[x] = RGBToLab[T](c)
					row = row[4:]
				}
			}
		}
	case *image.Gray:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := src.Pix[src.Stride*y : src.Stride*y+width]
				drow := ans.Pix[ans.Stride*y : ans.Stride*y+width]
				for x, gray := range row {
					drow[x] = RGBToLab[T](RGB{gray, gray, gray})
				}
			}
		}
	default:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				drow := ans.Pix[ans.Stride*y : ans.Stride*y+width]
				for x := range drow {
					c := RGBModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(RGB)
					drow[x] = RGBToLab[T](c)
				}
			}
		}
	}
	Logger().Debug("converting image to Lab", "type", fmt.Sprintf("%T", img), "width", width, "height", height)
	if err = parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, fmt.Errorf("failed to convert %T to Lab: %w", img, err)
	}
	return ans, nil
}

// ToNRGB converts the image back to 8-bit sRGB. Out of gamut pixels are
// clamped.
func (p *LabImage[T]) ToNRGB() (*NRGB, error) {
	b := p.Rect
	width, height := b.Dx(), b.Dy()
	ans := NewNRGB(b)
	if width == 0 || height == 0 {
		return ans, nil
	}
	var num_clipped atomic.Int64
	f := func(start, limit int) {
		clipped := int64(0)
		for y := start; y < limit; y++ {
			row := p.Pix[p.Stride*y : p.Stride*y+width]
			drow := ans.Pix[ans.Stride*y:]
			_ = drow[3*(width-1)]
			for _, c := range row {
				s := drow[0:3:3]
				var was_clipped bool
				s[0], s[1], s[2], was_clipped = colorconv.LabToSRGB8Clipped(c.L, c.A, c.B)
				if was_clipped {
					clipped++
				}
				drow = drow[3:]
			}
		}
		num_clipped.Add(clipped)
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, fmt.Errorf("failed to convert Lab image to RGB: %w", err)
	}
	Logger().Debug("converted Lab image to RGB", "width", width, "height", height, "clipped_pixels", num_clipped.Load())
	return ans, nil
}
