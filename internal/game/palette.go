package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Background RGB
	BoardDark  RGB
	BoardLight RGB
	Border     RGB
	Head       RGB
	BodyBright RGB
	BodyDim    RGB
	Food       RGB
	FoodGlow   RGB
	Text       RGB
	TextDim    RGB
	Accent     RGB
	Danger     RGB
}{
	Background: RGB{R: 16, G: 18, B: 22},
	BoardDark:  RGB{R: 26, G: 30, B: 34},
	BoardLight: RGB{R: 31, G: 36, B: 40},
	Border:     RGB{R: 52, G: 60, B: 66},
	Head:       RGB{R: 140, G: 255, B: 150},
	BodyBright: RGB{R: 90, G: 215, B: 120},
	BodyDim:    RGB{R: 45, G: 130, B: 80},
	Food:       RGB{R: 255, G: 95, B: 80},
	FoodGlow:   RGB{R: 255, G: 140, B: 70},
	Text:       RGB{R: 235, G: 238, B: 240},
	TextDim:    RGB{R: 140, G: 148, B: 155},
	Accent:     RGB{R: 255, G: 220, B: 90},
	Danger:     RGB{R: 255, G: 85, B: 85},
}
