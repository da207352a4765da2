package config

// conversion
const MS_PER_SECOND = 1000

// Demo runner defaults
const DEFAULT_MEAN_ARRIVAL_MS = 5000
const DEFAULT_NUM_EVENTS = 20
const DEFAULT_INITIAL_DELAY_MS = 0

// How often the demo checks the clock for due events
const DEFAULT_POLL_INTERVAL_MS = 100

// files
const LOCAL_SCHEDULE_FILE = "/tmp/poisson_schedule.gob.gz"
