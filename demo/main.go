package main

import (
	"flag"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/fcangialosi/uiprogress"
	log "github.com/sirupsen/logrus"

	"github.com/fcangialosi/poisson/config"
	"github.com/fcangialosi/poisson/process"
	"github.com/fcangialosi/poisson/results"
	"github.com/fcangialosi/poisson/shared"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config for the demo")
	flag.Parse()

	meanMs := int64(config.DEFAULT_MEAN_ARRIVAL_MS)
	numEvents := config.DEFAULT_NUM_EVENTS
	initialDelayMs := int64(config.DEFAULT_INITIAL_DELAY_MS)
	pollInterval := time.Duration(config.DEFAULT_POLL_INTERVAL_MS) * time.Millisecond
	if *configFile != "" {
		meanMs, numEvents, initialDelayMs, pollInterval = shared.ParseYAMLConfig(*configFile)
	}

	proc, err := process.NewPoissonProcess(meanMs)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"mean_ms":          proc.MeanArrivalIntervalMs(),
		"events":           numEvents,
		"initial_delay_ms": initialDelayMs,
	}).Info("starting poisson process")

	arrivalTimesMs, err := proc.ArrivalTimesAfterMs(initialDelayMs, numEvents)
	if err != nil {
		log.Fatal(err)
	}

	sched := &results.ArrivalSchedule{
		MeanArrivalIntervalMs: proc.MeanArrivalIntervalMs(),
		InitialDelayMs:        initialDelayMs,
		GeneratedAt:           shared.UTCTimeString(),
		ArrivalTimesMs:        arrivalTimesMs,
	}
	if err := results.SaveSchedule(sched, config.LOCAL_SCHEDULE_FILE); err != nil {
		log.WithFields(log.Fields{"file": config.LOCAL_SCHEDULE_FILE}).Warn("could not save schedule: ", err)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(arrivalTimesMs)).AppendCompleted().PrependElapsed()

	fired := 0
	for fired < len(arrivalTimesMs) {
		nowMs := shared.CurrentTimeMs()
		for fired < len(arrivalTimesMs) && nowMs >= arrivalTimesMs[fired] {
			at := time.Unix(0, arrivalTimesMs[fired]*int64(time.Millisecond))
			color.Green("firing event %d at %s", fired+1, at.Format(time.StampMilli))
			bar.Incr()
			fired++
		}
		time.Sleep(pollInterval)
	}
	uiprogress.Stop()

	log.WithFields(log.Fields{
		"events":            humanize.Comma(int64(len(arrivalTimesMs))),
		"requested_mean_ms": meanMs,
		"observed_mean_ms":  results.ObservedMeanIntervalMs(sched),
	}).Info("all events fired")
}
