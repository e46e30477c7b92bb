package annotate

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

type Hex string

// Hex2Color Convert Hex-html colors to color.Color's.
// For instance `ffffff` returns white, a leading `#` is allowed.
func Hex2Color(hex Hex) (color.Color, error) {
	type RGB struct {
		Red   uint8
		Green uint8
		Blue  uint8
	}

	s := strings.TrimPrefix(string(hex), "#")
	if len(s) != 6 {
		return color.RGBA{}, errors.New("cannot parse RGB values " + string(hex))
	}

	var rgb RGB
	values, err := strconv.ParseUint(s, 16, 32)

	if err != nil {
		return color.RGBA{}, errors.New("cannot parse RGB values " + string(hex))
	}

	rgb = RGB{
		Red:   uint8(values >> 16),
		Green: uint8((values >> 8) & 0xFF),
		Blue:  uint8(values & 0xFF),
	}
	outputColor := color.RGBA{R: rgb.Red, G: rgb.Green, B: rgb.Blue, A: 0xff}

	return outputColor, nil
}
