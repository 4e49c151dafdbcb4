//go:build !windows

package helpers

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type DiskInfo struct {
	Path             string `json:"path"`
	SizeFormattedGb  string `json:"sizeFormattedGb"`
	UsedFormattedGb  string `json:"usedFormattedGb"`
	AvailFormattedGb string `json:"availFormattedGb"`
	Pcent            string `json:"pcent"`
}

// DiskUsage reports usage of the filesystem holding path.
func DiskUsage(path string) (*DiskInfo, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("statfs %s: %w", path, err)
	}

	size := stat.Blocks * uint64(stat.Bsize)
	avail := stat.Bavail * uint64(stat.Bsize)
	used := size - stat.Bfree*uint64(stat.Bsize)

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
