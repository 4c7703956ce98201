package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFrame         // Board grid lines
	ColorMuted         // Hints and empty cells
	ColorAccent        // Score and title
	ColorAlert         // Game over overlay

	// Tile colors follow the classic 2048 palette.
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper // Anything above 2048
)

// TileColor returns the palette entry for a tile value.
func TileColor(value int) Color {
	switch value {
	case 0:
		return ColorMuted
	case 2:
		return ColorTile2
	case 4:
		return ColorTile4
	case 8:
		return ColorTile8
	case 16:
		return ColorTile16
	case 32:
		return ColorTile32
	case 64:
		return ColorTile64
	case 128:
		return ColorTile128
	case 256:
		return ColorTile256
	case 512:
		return ColorTile512
	case 1024:
		return ColorTile1024
	case 2048:
		return ColorTile2048
	default:
		return ColorTileSuper
	}
}
