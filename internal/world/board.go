package world

import (
	"context"

	"github.com/jakecoffman/cp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sotora/internal/telemetry"
)

// DefaultBoardHalfSize gives a 14x14 battle board centered on the origin.
const DefaultBoardHalfSize = 7

// Tile is one cell of the battle board or the overworld ground, stored as
// the character it is drawn with.
type Tile rune

const (
	TileWall  Tile = '#' // outside the board
	TileFloor Tile = '.'
	TileGrass Tile = ','
)

// IsPassable reports whether the cell can be stood on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileGrass
}

// Rune returns the display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Board is the grid the battle takes place on.
type Board struct {
	HalfSize int
	Width    int
	Height   int
	Tiles    [][]Tile
}

// NewBoard creates a square board of floor tiles spanning
// [-halfSize, halfSize) on both axes.
func NewBoard(halfSize int) *Board {
	if halfSize < 0 {
		halfSize = 0
	}
	size := halfSize * 2

	tiles := make([][]Tile, size)
	for y := range tiles {
		tiles[y] = make([]Tile, size)
		for x := range tiles[y] {
			tiles[y][x] = TileFloor
		}
	}

	return &Board{
		HalfSize: halfSize,
		Width:    size,
		Height:   size,
		Tiles:    tiles,
	}
}

// GetTile returns the tile at grid position (x, y), or TileWall out of bounds.
func (b *Board) GetTile(x, y int) Tile {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return TileWall
	}
	return b.Tiles[y][x]
}

// IsPassable returns true if the grid position can be stood on.
func (b *Board) IsPassable(x, y int) bool {
	return b.GetTile(x, y).IsPassable()
}

// WorldPos converts a grid position to a ground-plane position.
func (b *Board) WorldPos(x, y int) cp.Vector {
	return cp.Vector{X: float64(x - b.HalfSize), Y: float64(y - b.HalfSize)}
}

// Center returns the ground-plane midpoint of the board.
func (b *Board) Center() cp.Vector {
	return cp.Vector{X: -0.5, Y: -0.5}
}

// Spawn adds one object per tile to scope and returns how many were created.
func (b *Board) Spawn(ctx context.Context, scope Scope) int {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "board.spawn")
	defer span.End()

	count := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			tile := b.Tiles[y][x]
			scope.Spawn(Object{
				Kind:  KindBoardTile,
				Pos:   b.WorldPos(x, y),
				Glyph: tile.Rune(),
			})
			count++
		}
	}

	span.SetAttributes(
		attribute.Int("board.width", b.Width),
		attribute.Int("board.height", b.Height),
		attribute.Int("board.tiles", count),
	)

	return count
}
