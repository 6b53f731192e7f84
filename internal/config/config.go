package config

import "image/color"

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Cluster parameters
	BoxCount       = 150
	SphereRadius   = 4
	BoxScaleMin    = 0.1
	BoxScaleRange  = 2.5
	SpinRateMin    = 0.005
	SpinRateRange  = 0.002
	GroupSpinSpeed = 0.002
	EdgeScale      = 1.01

	// Camera and controls
	CameraFOV      = 75
	CameraNear     = 0.1
	CameraFar      = 1000
	CameraDistance = 20
	DampingFactor  = 0.05
	RotateSpeed    = 1.0
	ZoomSpeed      = 1.0

	// Fog uses the background color
	FogNear = 0.05
	FogFar  = 2000

	// Bloom pass
	BloomStrength  = 0.4
	BloomRadius    = 0
	BloomThreshold = 0
	BloomLevels    = 5

	// Background sprites
	LayerSprites = 8
	LayerOpacity = 0.1
	LayerRadius  = 14
	LayerSize    = 24
	LayerZ       = -15.5
	LayerScale   = 2.5

	// Stats overlay
	StatsHistory = 100

	BackgroundHex = 0x0033bb
	EdgeHex       = 0xffffff
)

// Palette holds the box face colors. Kept as a slice so more shades can be added.
var Palette = []color.RGBA{
	{R: 0x7c, G: 0x80, B: 0xf7, A: 0xff},
}
