package conf

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Cfg struct {
	ServerPort int

	DbDriver   string
	DbFileName string
	DbDSN      string

	Workers   int
	QueueSize int

	CallbackTimeoutSec int
	CallbackRetries    int

	SimulationDelayMs int

	OgrInfoBin string
	Ogr2OgrBin string

	// BrowseRoot limits filesystem browsing; DataDisk is the volume reported
	// by the version endpoint.
	BrowseRoot string
	DataDisk   string
}

var (
	cfg  *Cfg
	once sync.Once
)

// Read loads conf/app.yml once; every key can be overridden per environment
// variable.
func Read() *Cfg {
	once.Do(func() {
		viper.SetConfigName("conf/app")
		viper.AddConfigPath("./")

		viper.SetDefault("server.port", 3000)
		viper.SetDefault("db.driver", "sqlite")
		viper.SetDefault("db.filename", "geosink.db")
		viper.SetDefault("db.dsn", "")
		viper.SetDefault("jobs.workers", 4)
		viper.SetDefault("jobs.queuesize", 64)
		viper.SetDefault("callback.timeoutsec", 30)
		viper.SetDefault("callback.retries", 3)
		viper.SetDefault("simulation.delayms", 500)
		viper.SetDefault("toolkit.ogrinfo", "ogrinfo")
		viper.SetDefault("toolkit.ogr2ogr", "ogr2ogr")
		viper.SetDefault("dirs.browseroot", "/")
		viper.SetDefault("sys.disk", "/")

		if err := viper.ReadInConfig(); err != nil {
			log.Warnf("[Conf] No config file read, using defaults and environment: %s", err)
		}

		cfg = &Cfg{
			ServerPort:         getConfInt("server.port", "PORT"),
			DbDriver:           getConfString("db.driver", "DB_DRIVER"),
			DbFileName:         getConfString("db.filename", "DB_FILENAME"),
			DbDSN:              getConfStringOptional("db.dsn", "DB_DSN"),
			Workers:            getConfInt("jobs.workers", "JOB_WORKERS"),
			QueueSize:          getConfInt("jobs.queuesize", "JOB_QUEUE_SIZE"),
			CallbackTimeoutSec: getConfInt("callback.timeoutsec", "CALLBACK_TIMEOUT_SEC"),
			CallbackRetries:    getConfInt("callback.retries", "CALLBACK_RETRIES"),
			SimulationDelayMs:  getConfInt("simulation.delayms", "SIMULATION_DELAY_MS"),
			OgrInfoBin:         getConfString("toolkit.ogrinfo", "OGRINFO_BIN"),
			Ogr2OgrBin:         getConfString("toolkit.ogr2ogr", "OGR2OGR_BIN"),
			BrowseRoot:         getConfString("dirs.browseroot", "BROWSE_ROOT"),
			DataDisk:           getConfString("sys.disk", "DATA_DISK"),
		}
	})

	return cfg
}

func getConfInt(key, envKey string) int {
	val := os.Getenv(envKey)
	if val == "" {
		return viper.GetInt(key)
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		log.Errorf("[Conf] Error parsing env variable '%s': %s", envKey, err)
		return viper.GetInt(key)
	}
	return n
}

func getConfString(key, envKey string) string {
	val := getConfStringOptional(key, envKey)
	if val == "" {
		log.Panicf("Missing config value for key %s", key)
	}
	return val
}

func getConfStringOptional(key, envKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return viper.GetString(key)
}

// Addr returns the listen address of the HTTP server.
func (c *Cfg) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.ServerPort)
}
