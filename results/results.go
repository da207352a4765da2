package results

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// ArrivalSchedule is one generated batch of arrival times, along with the
// parameters that produced it.
type ArrivalSchedule struct {
	MeanArrivalIntervalMs int64
	InitialDelayMs        int64
	GeneratedAt           string // UTC timestamp string of when the batch was generated
	ArrivalTimesMs        []int64
}

func EncodeSchedule(s *ArrivalSchedule) []byte {
	w := new(bytes.Buffer)
	e := gob.NewEncoder(w)
	e.Encode(s.MeanArrivalIntervalMs)
	e.Encode(s.InitialDelayMs)
	e.Encode(s.GeneratedAt)
	e.Encode(s.ArrivalTimesMs)
	return w.Bytes()
}

func DecodeSchedule(data []byte) ArrivalSchedule {
	sched := ArrivalSchedule{}
	r := bytes.NewBuffer(data)
	if data == nil || len(data) < 1 {
		log.Error("error decoding into ArrivalSchedule struct")
	}
	d := gob.NewDecoder(r)
	d.Decode(&sched.MeanArrivalIntervalMs)
	d.Decode(&sched.InitialDelayMs)
	d.Decode(&sched.GeneratedAt)
	d.Decode(&sched.ArrivalTimesMs)
	return sched
}

// SaveSchedule writes the gzip-compressed schedule to the given path.
func SaveSchedule(s *ArrivalSchedule, path string) error {
	var buf bytes.Buffer
	compr := gzip.NewWriter(&buf)
	compr.Write(EncodeSchedule(s))
	compr.Close()
	return ioutil.WriteFile(path, buf.Bytes(), 0644)
}

func LoadSchedule(path string) (ArrivalSchedule, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return ArrivalSchedule{}, err
	}
	decompr, err := gzip.NewReader(bytes.NewBuffer(data))
	if err != nil {
		return ArrivalSchedule{}, err
	}
	defer decompr.Close()
	raw, err := ioutil.ReadAll(decompr)
	if err != nil {
		return ArrivalSchedule{}, err
	}
	return DecodeSchedule(raw), nil
}

// ObservedMeanIntervalMs returns the mean spacing between consecutive
// arrival times, or 0 when the schedule holds fewer than two.
func ObservedMeanIntervalMs(s *ArrivalSchedule) float64 {
	if len(s.ArrivalTimesMs) < 2 {
		return 0
	}
	intervals := make([]float64, len(s.ArrivalTimesMs)-1)
	for i := 1; i < len(s.ArrivalTimesMs); i++ {
		intervals[i-1] = float64(s.ArrivalTimesMs[i] - s.ArrivalTimesMs[i-1])
	}
	return stat.Mean(intervals, nil)
}
