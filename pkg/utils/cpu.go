package utils

import "github.com/shirou/gopsutil/cpu"

// CPUPercent samples overall CPU usage without blocking.
func CPUPercent() (float64, error) {
	usage, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(usage) == 0 {
		return 0, nil
	}
	return usage[0], nil
}
