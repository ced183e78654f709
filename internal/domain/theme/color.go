package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"blog-service/internal/custom_errors"
)

// Darken lowers every channel of a #RRGGBB color by round(2.55*percent), clamped at zero.
func Darken(color string, percent float64) (string, error) {
	if percent < 0 || percent > 100 || math.IsNaN(percent) {
		return "", fmt.Errorf("%w: %v", custom_errors.ErrInvalidPercent, percent)
	}

	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("%w: %q", custom_errors.ErrInvalidColor, color)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %q", custom_errors.ErrInvalidColor, color)
	}

	amount := int(math.Round(2.55 * percent))
	r := clamp(int(rgb>>16&0xFF) - amount)
	g := clamp(int(rgb>>8&0xFF) - amount)
	b := clamp(int(rgb&0xFF) - amount)

	return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
}

// MustDarken is Darken for colors known to be valid, such as theme palette entries.
func MustDarken(color string, percent float64) string {
	darker, err := Darken(color, percent)
	if err != nil {
		panic(err)
	}
	return darker
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
