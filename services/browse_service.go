package services

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// BrowseItem is one entry of a browsed directory. File geodatabases are
// directories with a .gdb suffix, SDE connection files are .sde files.
type BrowseItem struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"` // gdb, sde, folder, file
	Size     int64  `json:"size,omitempty"`
	Modified string `json:"modified,omitempty"`
}

type BrowseResult struct {
	CurrentPath string       `json:"current_path"`
	ParentPath  string       `json:"parent_path,omitempty"`
	Items       []BrowseItem `json:"items"`
	Drives      []string     `json:"drives"`
}

var ErrPathNotFound = os.ErrNotExist

// Browse lists a directory for the datasource picker. An empty path returns
// the filesystem roots. Filter narrows the listing to "gdb", "sde" or
// "folder"; folders always stay visible so the tree remains navigable.
func Browse(path, filter string) (*BrowseResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		drives := availableDrives()
		items := make([]BrowseItem, 0, len(drives))
		for _, d := range drives {
			items = append(items, BrowseItem{Name: d, Path: d, Type: "folder"})
		}
		return &BrowseResult{CurrentPath: "", Items: items, Drives: drives}, nil
	}

	path = filepath.Clean(path)

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path not found %s: %w", path, ErrPathNotFound)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path must be a directory: %s", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	items := make([]BrowseItem, 0, len(entries))
	for _, entry := range entries {
		item, ok := browseEntry(path, entry, filter)
		if ok {
			items = append(items, item)
		}
	}

	// Folders first, then by name.
	sort.Slice(items, func(i, j int) bool {
		iFolder, jFolder := items[i].Type == "folder", items[j].Type == "folder"
		if iFolder != jFolder {
			return iFolder
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	result := &BrowseResult{
		CurrentPath: path,
		Items:       items,
		Drives:      availableDrives(),
	}
	if parent := filepath.Dir(path); parent != path {
		result.ParentPath = parent
	}
	return result, nil
}

func browseEntry(dir string, entry os.DirEntry, filter string) (BrowseItem, bool) {
	itemPath := filepath.Join(dir, entry.Name())

	itemType := "file"
	switch {
	case isGeodatabase(itemPath):
		itemType = "gdb"
	case isSdeConnection(itemPath):
		itemType = "sde"
	case entry.IsDir():
		itemType = "folder"
	default:
		if filter != "" && filter != "all" {
			return BrowseItem{}, false
		}
	}

	if filter != "" && filter != "all" && itemType != filter && itemType != "folder" {
		return BrowseItem{}, false
	}

	item := BrowseItem{Name: entry.Name(), Path: itemPath, Type: itemType}
	if info, err := entry.Info(); err == nil {
		if !entry.IsDir() {
			item.Size = info.Size()
		}
		item.Modified = info.ModTime().UTC().Format(time.RFC3339)
	} else {
		log.Debugf("[Browse] Cannot stat %s: %s", itemPath, err)
	}
	return item, true
}

func isGeodatabase(path string) bool {
	if !strings.HasSuffix(strings.ToLower(path), ".gdb") {
		return false
	}
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

func isSdeConnection(path string) bool {
	if !strings.HasSuffix(strings.ToLower(path), ".sde") {
		return false
	}
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

func availableDrives() []string {
	if runtime.GOOS != "windows" {
		return []string{"/"}
	}

	drives := make([]string, 0, 26)
	for letter := 'A'; letter <= 'Z'; letter++ {
		drive := string(letter) + ":\\"
		if _, err := os.Stat(drive); err == nil {
			drives = append(drives, drive)
		}
	}
	return drives
}
