package results

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testSchedule() *ArrivalSchedule {
	return &ArrivalSchedule{
		MeanArrivalIntervalMs: 5000,
		InitialDelayMs:        250,
		GeneratedAt:           "20260830120000",
		ArrivalTimesMs:        []int64{1000, 4200, 10100, 10100, 23000},
	}
}

func TestScheduleEncodeDecode(t *testing.T) {
	orig := testSchedule()
	decoded := DecodeSchedule(EncodeSchedule(orig))
	if !reflect.DeepEqual(*orig, decoded) {
		t.Errorf("decoded schedule %+v does not match original %+v", decoded, *orig)
	}
}

func TestSaveAndLoadSchedule(t *testing.T) {
	dir, err := ioutil.TempDir("", "poisson_results")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "schedule.gob.gz")

	orig := testSchedule()
	if err := SaveSchedule(orig, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSchedule(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*orig, loaded) {
		t.Errorf("loaded schedule %+v does not match original %+v", loaded, *orig)
	}
}

func TestObservedMeanIntervalMs(t *testing.T) {
	s := &ArrivalSchedule{ArrivalTimesMs: []int64{0, 10, 30, 60}}
	if got := ObservedMeanIntervalMs(s); got != 20 {
		t.Errorf("expected mean interval 20, got %v", got)
	}

	short := &ArrivalSchedule{ArrivalTimesMs: []int64{1000}}
	if got := ObservedMeanIntervalMs(short); got != 0 {
		t.Errorf("expected 0 for single arrival, got %v", got)
	}
}
