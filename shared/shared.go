package shared

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/fcangialosi/poisson/config"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

type YAMLConfig struct {
	Mean_arrival_ms  int64
	Num_events       int
	Initial_delay_ms int64
	Poll_interval_ms int64
}

func ReadYAMLConfig(config_file string) *YAMLConfig {
	config := YAMLConfig{}
	data, err := ioutil.ReadFile(config_file)
	if err != nil {
		log.Warn("Hint: make sure you're only using spaces, not tabs!")
		log.Fatal("Error reading config file: ", err)
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		log.Warn("Hint: make sure you're only using spaces, not tabs!")
		log.Fatal("Error parsing config file: ", err)
	}
	return &config
}

// ParseYAMLConfig reads the demo config file and fills in defaults for any
// field left unset.
func ParseYAMLConfig(config_file string) (int64, int, int64, time.Duration) {
	cfg := ReadYAMLConfig(config_file)
	if cfg.Mean_arrival_ms == 0 {
		cfg.Mean_arrival_ms = config.DEFAULT_MEAN_ARRIVAL_MS
	}
	if cfg.Num_events == 0 {
		cfg.Num_events = config.DEFAULT_NUM_EVENTS
	}
	if cfg.Poll_interval_ms == 0 {
		cfg.Poll_interval_ms = config.DEFAULT_POLL_INTERVAL_MS
	}
	if cfg.Mean_arrival_ms < 0 || cfg.Num_events < 0 || cfg.Initial_delay_ms < 0 || cfg.Poll_interval_ms < 0 {
		log.Fatal("Config values cannot be negative")
	}
	return cfg.Mean_arrival_ms, cfg.Num_events, cfg.Initial_delay_ms,
		time.Duration(cfg.Poll_interval_ms) * time.Millisecond
}

func UTCTimeString() string {
	return fmt.Sprintf(time.Now().UTC().Format("20060102150405"))
}

func CurrentTimeMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
