package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/srad/geosink/conf"
	"github.com/srad/geosink/controllers"
	v1 "github.com/srad/geosink/controllers/api/v1"
	"github.com/srad/geosink/database"
	"github.com/srad/geosink/gis"
	"github.com/srad/geosink/jobs"
	"github.com/srad/geosink/network"
)

var (
	Version string
	Commit  string
)

func init() {
	if os.Getenv("SECRET") == "" {
		log.Fatal("FATAL: JWT SECRET environment variable is not set.")
	}
	log.Infoln("OK: JWT SECRET environment variable is set.")
}

func main() {
	log.SetFormatter(&log.TextFormatter{})
	log.Infof("Version: %s, Commit: %s", Version, Commit)

	cfg := conf.Read()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("[main] Database init failed: %s", err)
	}

	// The toolkit probe decides real vs. simulated job execution; a missing
	// installation degrades the service instead of stopping it.
	toolkit := gis.NewOGR(cfg.OgrInfoBin, cfg.Ogr2OgrBin)
	if toolkit.Available() {
		log.Infof("OK: Found GIS toolkit ('%s', '%s')", cfg.OgrInfoBin, cfg.Ogr2OgrBin)
	} else {
		log.Warnf("GIS toolkit not found in PATH, jobs will run in simulation mode")
	}

	ctx, cancel := context.WithCancel(context.Background())

	hub := network.NewHub()
	go hub.Run(ctx)

	reporter := jobs.NewReporter()
	reporter.Client.Timeout = time.Duration(cfg.CallbackTimeoutSec) * time.Second
	reporter.Attempts = cfg.CallbackRetries

	executor := jobs.NewExecutor(toolkit, reporter)
	executor.Events = hub
	executor.SimulationDelay = time.Duration(cfg.SimulationDelayMs) * time.Millisecond

	dispatcher := jobs.NewDispatcher(executor, cfg.Workers, cfg.QueueSize)
	dispatcher.Events = hub
	dispatcher.Start()

	env := &v1.Env{
		Dispatcher: dispatcher,
		Toolkit:    toolkit,
		Hub:        hub,
		Version:    Version,
		Commit:     Commit,
		BrowseRoot: cfg.BrowseRoot,
	}

	gin.SetMode("release")
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      controllers.Setup(env),
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 1 * time.Minute,
	}

	go func() {
		log.Infof("[main] start http server listening %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Infoln("[main] cleanup ...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorln(err)
	}
	dispatcher.Stop()
	cancel()
	log.Infoln("[main] cleanup complete")
}
