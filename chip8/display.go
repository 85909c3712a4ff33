package chip8

const (
	/// DisplayWidth and DisplayHeight are the monochrome resolution.
	///
	DisplayWidth  = 64
	DisplayHeight = 32
)

/// DisplayBuffer is the 64x32 pixel grid, row-major. Sprites are
/// drawn by XOR-ing pixels, and coordinates wrap around both edges
/// (toroidal addressing, which is what the original machines did).
///
type DisplayBuffer struct {
	pixels [DisplayHeight][DisplayWidth]bool
}

/// Clear turns every pixel off.
///
func (d *DisplayBuffer) Clear() {
	d.pixels = [DisplayHeight][DisplayWidth]bool{}
}

/// TogglePixel XOR-flips the pixel at (x, y), wrapping coordinates
/// modulo the screen size. It reports whether the pixel was on before
/// the flip, which is how sprite collisions are detected.
///
func (d *DisplayBuffer) TogglePixel(x, y int) bool {
	x &= DisplayWidth - 1
	y &= DisplayHeight - 1

	on := d.pixels[y][x]
	d.pixels[y][x] = !on

	return on
}

/// Pixel returns the state of the pixel at (x, y), wrapped.
///
func (d *DisplayBuffer) Pixel(x, y int) bool {
	return d.pixels[y&(DisplayHeight-1)][x&(DisplayWidth-1)]
}

/// Snapshot returns a copy of the grid for the presentation layer.
///
func (d *DisplayBuffer) Snapshot() [DisplayHeight][DisplayWidth]bool {
	return d.pixels
}
