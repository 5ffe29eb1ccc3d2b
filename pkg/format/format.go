// Package format renders byte counts and durations for display. It has no
// dependencies so the browser client can link it.
package format

import (
	"fmt"
	"math"
	"strconv"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes renders a byte count with the largest fitting binary unit.
// Scaled values of 100 and above get no decimals, 10 and above one, the rest two.
func Bytes(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	index := 0
	for index < len(byteUnits)-1 && float64(bytes) >= math.Pow(1024, float64(index+1)) {
		index++
	}
	value := float64(bytes) / math.Pow(1024, float64(index))
	decimals := 2
	switch {
	case value >= 100:
		decimals = 0
	case value >= 10:
		decimals = 1
	}
	return toFixed(value, decimals) + " " + byteUnits[index]
}

// toFixed rounds half up, which is what users expect from "1.125 KB" -> "1.13 KB".
func toFixed(value float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Floor(value*scale+0.5)/scale, 'f', decimals, 64)
}

// Duration renders seconds as MM:SS, or H:MM:SS once an hour is reached.
// Non-finite and negative input yields "".
func Duration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return ""
	}
	hours := int64(seconds / 3600)
	minutes := int64(math.Mod(seconds, 3600) / 60)
	secs := int64(math.Mod(seconds, 60))
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
