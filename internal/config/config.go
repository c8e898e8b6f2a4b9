package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "linecanvas"

	DefaultRadius = 10
	MinRadius     = 3
	MaxRadius     = 60

	// SelectionTolerance is how far (px) a click may land from a line and still select it.
	SelectionTolerance = 10.0

	ButtonWidth   = 130
	ButtonHeight  = 40
	ButtonPadding = 10

	HUDX = 10
	HUDY = 10

	CircleStrokeWidth = 1.5
	LineStrokeWidth   = 1.0
	BorderStrokeWidth = 1.0
)

var (
	BackgroundColor   = color.RGBA{30, 30, 30, 255}
	ButtonColor       = color.RGBA{0, 120, 215, 255}
	ButtonActiveColor = color.RGBA{0, 180, 120, 255}
	ButtonLineColor   = color.RGBA{120, 60, 200, 255}
	BorderColor       = color.RGBA{255, 255, 255, 255}
	TextColor         = color.RGBA{255, 255, 255, 255}

	CircleColor       = color.RGBA{255, 255, 255, 255}
	SelectedColor     = color.RGBA{255, 255, 0, 255}
	LineColor         = color.RGBA{200, 200, 255, 255}
	SelectedLineColor = color.RGBA{255, 1, 0, 255}
)
