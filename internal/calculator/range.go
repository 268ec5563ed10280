package calculator

import (
	"errors"
	"math"

	"StockChart/internal/model"
)

// PriceRange scans the samples and returns the lowest and highest price.
// The chart's value axis is scaled to this range.
func PriceRange(samples []model.PriceSample) (low, high float64, err error) {
	if len(samples) == 0 {
		return 0, 0, errors.New("no samples provided")
	}
	low = math.Inf(1)
	high = math.Inf(-1)
	for _, s := range samples {
		if s.Price > high {
			high = s.Price
		}
		if s.Price < low {
			low = s.Price
		}
	}
	return low, high, nil
}

// Position returns where price sits within [low, high] (0.0~1.0).
// A flat range puts every price in the middle.
func Position(price, low, high float64) float64 {
	if high == low {
		return 0.5
	}
	pos := (price - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}

// NearestIndex maps a horizontal position x on a surface of the given width
// to the index of the nearest of n evenly spaced samples. It returns -1 when
// there are no samples.
func NearestIndex(x, width float64, n int) int {
	if n <= 0 {
		return -1
	}
	if n == 1 || width <= 0 {
		return 0
	}
	ratio := x / width
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * float64(n-1)))
}

// IndexOffset is the inverse of NearestIndex: the horizontal position of
// sample i on a surface of the given width.
func IndexOffset(i, n int, width float64) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) * width / float64(n-1)
}
