package experiment

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/sarsa"
	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/environment/envconfig"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
)

func config(trials int, seed uint64) Config {
	return Config{
		Trials:    trials,
		Seed:      seed,
		EnvConf:   envconfig.Default(),
		AgentConf: agent.NewTypedConfig(sarsa.DefaultConfig()),
	}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	const trials = 20
	returns := trackers.NewReturn("")
	lengths := trackers.NewEpisodeLength("")

	exp, err := config(trials, 3).CreateExp(returns, lengths)
	if err != nil {
		t.Fatal(err)
	}
	exp.SetLogger(quiet())

	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}

	if exp.Completed() != trials {
		t.Errorf("want %d trials completed, have %d", trials, exp.Completed())
	}
	if len(returns.Data()) != trials {
		t.Errorf("want %d returns, have %d", trials, len(returns.Data()))
	}
	if len(lengths.Data()) != trials {
		t.Errorf("want %d lengths, have %d", trials, len(lengths.Data()))
	}
	for i, l := range lengths.Data() {
		if l < 1 {
			t.Errorf("trial %d has length %v", i, l)
		}
	}
	if exp.Arrivals() > trials {
		t.Errorf("more arrivals (%d) than trials", exp.Arrivals())
	}

	s, ok := exp.Agent().(*sarsa.Sarsa)
	if !ok {
		t.Fatalf("want *sarsa.Sarsa, have %T", exp.Agent())
	}
	if s.Stats().Trials != trials {
		t.Errorf("agent counted %d trials, want %d", s.Stats().Trials, trials)
	}
	if s.Table().Len() == 0 {
		t.Errorf("agent learned nothing")
	}
}

func TestRunReproducible(t *testing.T) {
	run := func() ([]float64, []float64) {
		returns := trackers.NewReturn("")
		lengths := trackers.NewEpisodeLength("")
		exp, err := config(10, 11).CreateExp(returns, lengths)
		if err != nil {
			t.Fatal(err)
		}
		exp.SetLogger(quiet())
		if err := exp.Run(); err != nil {
			t.Fatal(err)
		}
		return returns.Data(), lengths.Data()
	}

	r1, l1 := run()
	r2, l2 := run()
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("returns differ between runs: %v != %v", r1, r2)
	}
	if !reflect.DeepEqual(l1, l2) {
		t.Errorf("lengths differ between runs: %v != %v", l1, l2)
	}
}

// failingAgent never acts
type failingAgent struct {
	err error
}

func (f failingAgent) Step() (env.Action, error) {
	return env.Stay, f.err
}

func (f failingAgent) Reset(env.Location) {}

func TestRunAborts(t *testing.T) {
	e, err := envconfig.Default().Create(1)
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	returns := trackers.NewReturn("")
	exp := NewTrials(e, failingAgent{boom}, 5, returns)
	exp.SetLogger(quiet())

	err = exp.Run()
	if !errors.Is(err, boom) {
		t.Fatalf("want error wrapping %v, have %v", boom, err)
	}
	if exp.Completed() != 0 {
		t.Errorf("want 0 completed trials, have %d", exp.Completed())
	}
	if len(returns.Data()) != 0 {
		t.Errorf("aborted trial should not produce a return")
	}
}

func TestShowProgress(t *testing.T) {
	exp, err := config(3, 5).CreateExp()
	if err != nil {
		t.Fatal(err)
	}
	exp.SetLogger(quiet())

	var out bytes.Buffer
	exp.ShowProgress(&out)
	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("100.00%")) {
		t.Errorf("progress bar never reached 100%%: %q", out.String())
	}
}

func TestConfigValidate(t *testing.T) {
	if err := config(-1, 0).Validate(); err == nil {
		t.Errorf("expected error for negative trials")
	}

	c := config(1, 0)
	c.AgentConf = agent.TypedConfig{}
	if err := c.Validate(); err == nil {
		t.Errorf("expected error for missing agent")
	}

	c = config(1, 0)
	bad := sarsa.DefaultConfig()
	bad.LearningRate = 2
	c.AgentConf = agent.NewTypedConfig(bad)
	if _, err := c.CreateExp(); err == nil {
		t.Errorf("expected error for invalid agent config")
	}

	c = config(1, 0)
	c.EnvConf.Environment = "Nowhere"
	if _, err := c.CreateExp(); err == nil {
		t.Errorf("expected error for unknown environment")
	}
}

func TestConfigJSON(t *testing.T) {
	data, err := json.Marshal(config(7, 42))
	if err != nil {
		t.Fatal(err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, config(7, 42)) {
		t.Errorf("want %+v, have %+v", config(7, 42), c)
	}
}
