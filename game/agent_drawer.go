package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/flocking2d/assets"
	"github.com/meghashyamc/flocking2d/flock"
	"github.com/meghashyamc/flocking2d/geometry"
)

var (
	agentFill    = color.RGBA{175, 175, 175, 255}
	agentOutline = color.Black
)

// agentTriangle returns the corners of the triangle for an agent, nose first,
// pointing along its heading
func agentTriangle(agent *flock.Agent) [3]geometry.Vector {
	r := agent.Radius()
	// Shape is drawn pointing up, so turn it a quarter to face the heading
	theta := agent.Heading() + math.Pi/2
	sin, cos := math.Sincos(theta)
	position := agent.Position()

	corners := [3]geometry.Vector{
		{X: 0, Y: -r * 2},
		{X: -r, Y: r * 2},
		{X: r, Y: r * 2},
	}
	for i, corner := range corners {
		corners[i] = geometry.Vector{
			X: position.X + corner.X*cos - corner.Y*sin,
			Y: position.Y + corner.X*sin + corner.Y*cos,
		}
	}

	return corners
}

func drawAgent(screen *ebiten.Image, agent *flock.Agent) {
	corners := agentTriangle(agent)

	var path vector.Path
	path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	path.LineTo(float32(corners[1].X), float32(corners[1].Y))
	path.LineTo(float32(corners[2].X), float32(corners[2].Y))
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	red, green, blue, alpha := agentFill.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(red) / 0xffff
		vertices[i].ColorG = float32(green) / 0xffff
		vertices[i].ColorB = float32(blue) / 0xffff
		vertices[i].ColorA = float32(alpha) / 0xffff
	}
	screen.DrawTriangles(vertices, indices, assets.FillSource, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	for i := range corners {
		from, to := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, agentOutline, true)
	}
}
