package trackers

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	ts "github.com/samuelfneumann/smartcab/timestep"
)

// trial returns the timesteps of a trial with the given rewards
func trial(end ts.EndType, rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, len(rewards), 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		step := ts.New(stepType, r, len(rewards)-i-1, i+1)
		if stepType == ts.Last {
			step.SetEnd(end)
		}
		steps = append(steps, step)
	}
	return steps
}

func track(tr Tracker, trials ...[]ts.TimeStep) {
	for _, steps := range trials {
		for _, step := range steps {
			tr.Track(step)
		}
	}
}

func TestReturn(t *testing.T) {
	dir := t.TempDir()
	r := NewReturn(filepath.Join(dir, "return.bin"))

	track(r, trial(ts.Arrived, 2, -1, 12), trial(ts.Timeout, -0.5, 0))

	want := []float64{13, -0.5}
	if !reflect.DeepEqual(r.Data(), want) {
		t.Errorf("want %v, have %v", want, r.Data())
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := LoadData(filepath.Join(dir, "return.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("loaded %v, want %v", data, want)
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 5, 0))
	r.Track(ts.New(ts.Mid, 0, 3, 2))
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength(filepath.Join(t.TempDir(), "length.bin"))

	track(e, trial(ts.Arrived, 2, 2, 2), trial(ts.Timeout, -1))

	want := []float64{3, 1}
	if !reflect.DeepEqual(e.Data(), want) {
		t.Errorf("want %v, have %v", want, e.Data())
	}
	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
}

func TestChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	c := NewChart(path)

	track(c, trial(ts.Arrived, 2, 12), trial(ts.Timeout, -1, -1, 0))

	if c.arrivals != 1 {
		t.Errorf("want 1 arrival, have %d", c.arrivals)
	}
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Errorf("chart is empty")
	}
}

func TestLoadDataMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected error")
	}
}
