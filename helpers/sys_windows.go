//go:build windows

package helpers

import (
	"fmt"

	"golang.org/x/sys/windows"
)

type DiskInfo struct {
	Path             string `json:"path"`
	SizeFormattedGb  string `json:"sizeFormattedGb"`
	UsedFormattedGb  string `json:"usedFormattedGb"`
	AvailFormattedGb string `json:"availFormattedGb"`
	Pcent            string `json:"pcent"`
}

// DiskUsage reports usage of the volume holding path.
func DiskUsage(path string) (*DiskInfo, error) {
	var avail, size, free uint64
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &avail, &size, &free); err != nil {
		return nil, fmt.Errorf("disk free space %s: %w", path, err)
	}

	used := size - free
	pcent := 0.0
	if size > 0 {
		pcent = float64(used) / float64(size) * 100
	}

	return &DiskInfo{
		Path:             path,
		SizeFormattedGb:  formatGb(size),
		UsedFormattedGb:  formatGb(used),
		AvailFormattedGb: formatGb(avail),
		Pcent:            fmt.Sprintf("%.0f%%", pcent),
	}, nil
}

func formatGb(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/(1024*1024*1024))
}
