package platform

// Color is an RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	COLOR_BLACK  = Color{0x00, 0x00, 0x00, 0xff}
	COLOR_WHITE  = Color{0xff, 0xff, 0xff, 0xff}
	COLOR_GRAY   = Color{0x80, 0x80, 0x80, 0xff}
	COLOR_YELLOW = Color{0xff, 0xff, 0x00, 0xff}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
