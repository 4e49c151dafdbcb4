package v1

import (
	"github.com/srad/geosink/gis"
	"github.com/srad/geosink/jobs"
	"github.com/srad/geosink/network"
)

// Env carries the handler dependencies; constructed once in main, no
// package-level state.
type Env struct {
	Dispatcher *jobs.Dispatcher
	Toolkit    gis.Toolkit
	Hub        *network.Hub
	Version    string
	Commit     string
	BrowseRoot string
}
