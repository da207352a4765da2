package shared

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fcangialosi/poisson/config"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "poisson_config")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "demo.yaml")
	if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseYAMLConfig(t *testing.T) {
	path := writeConfigFile(t, "mean_arrival_ms: 2500\nnum_events: 10\ninitial_delay_ms: 500\npoll_interval_ms: 50\n")

	meanMs, numEvents, delayMs, pollInterval := ParseYAMLConfig(path)
	if meanMs != 2500 {
		t.Errorf("expected mean 2500, got %d", meanMs)
	}
	if numEvents != 10 {
		t.Errorf("expected 10 events, got %d", numEvents)
	}
	if delayMs != 500 {
		t.Errorf("expected delay 500, got %d", delayMs)
	}
	if pollInterval != 50*time.Millisecond {
		t.Errorf("expected poll interval 50ms, got %v", pollInterval)
	}
}

func TestParseYAMLConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "num_events: 3\n")

	meanMs, numEvents, delayMs, pollInterval := ParseYAMLConfig(path)
	if meanMs != config.DEFAULT_MEAN_ARRIVAL_MS {
		t.Errorf("expected default mean, got %d", meanMs)
	}
	if numEvents != 3 {
		t.Errorf("expected 3 events, got %d", numEvents)
	}
	if delayMs != config.DEFAULT_INITIAL_DELAY_MS {
		t.Errorf("expected default delay, got %d", delayMs)
	}
	if pollInterval != config.DEFAULT_POLL_INTERVAL_MS*time.Millisecond {
		t.Errorf("expected default poll interval, got %v", pollInterval)
	}
}

func TestUTCTimeString(t *testing.T) {
	s := UTCTimeString()
	if len(s) != 14 {
		t.Fatalf("expected 14 character timestamp, got %q", s)
	}
	if _, err := time.Parse("20060102150405", s); err != nil {
		t.Errorf("timestamp %q does not parse: %v", s, err)
	}
}
