package qtable

import (
	"testing"

	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	env "github.com/samuelfneumann/smartcab/environment"
)

func key(t *testing.T, i int) state.Key {
	k, err := state.FromIndex(i)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestEnsure(t *testing.T) {
	table := New()
	k := key(t, 5)

	if table.Has(k) {
		t.Fatalf("empty table has %v", k)
	}

	if !table.Ensure(k, 2.0) {
		t.Errorf("ensure did not add %v", k)
	}
	v, ok := table.Values(k)
	if !ok {
		t.Fatalf("table missing %v after ensure", k)
	}
	for a, value := range v {
		if value != 2.0 {
			t.Errorf("action %v: want 2.0, have %v", env.Action(a), value)
		}
	}

	// A second Ensure must not reinitialise the state
	table.Set(k, env.Left, 7.0)
	if table.Ensure(k, -1.0) {
		t.Errorf("ensure re-added %v", k)
	}
	if table.At(k, env.Left) != 7.0 {
		t.Errorf("want 7.0, have %v", table.At(k, env.Left))
	}
	if table.Len() != 1 {
		t.Errorf("want 1 state, have %d", table.Len())
	}
}

func TestValuesIsCopy(t *testing.T) {
	table := New()
	k := key(t, 0)
	table.Ensure(k, 0.0)

	v, _ := table.Values(k)
	v[env.Forward] = 100

	if table.At(k, env.Forward) != 0.0 {
		t.Errorf("mutating Values copy changed the table")
	}
}

func TestAtPanicsOnUnseen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()

	New().At(key(t, 3), env.Forward)
}

func TestKeysOrdered(t *testing.T) {
	table := New()
	for _, i := range []int{17, 2, 9} {
		table.Ensure(key(t, i), 0)
	}

	keys := table.Keys()
	want := []int{2, 9, 17}
	for i, k := range keys {
		if k.Index() != want[i] {
			t.Errorf("keys[%d]: want index %d, have %d", i, want[i], k.Index())
		}
	}
}

func TestEqual(t *testing.T) {
	a, b := New(), New()
	a.Ensure(key(t, 1), 1)
	b.Ensure(key(t, 1), 1)

	if !a.Equal(b) {
		t.Errorf("equal tables reported unequal")
	}

	b.Set(key(t, 1), env.Stay, 2)
	if a.Equal(b) {
		t.Errorf("unequal tables reported equal")
	}
}

func TestMatrix(t *testing.T) {
	table := New()
	if table.Matrix() != nil {
		t.Errorf("empty table should have no matrix")
	}

	table.Ensure(key(t, 9), 3.0)
	table.Ensure(key(t, 4), 1.0)
	table.Set(key(t, 4), env.Left, -2)

	m := table.Matrix()
	r, c := m.Dims()
	if r != 2 || c != env.NumActions {
		t.Fatalf("want 2x%d, have %dx%d", env.NumActions, r, c)
	}

	// Rows follow Keys, which are in index order
	if m.At(0, int(env.Left)) != -2 || m.At(0, int(env.Forward)) != 1.0 {
		t.Errorf("row 0 should hold state 4, have %v", m.RawRowView(0))
	}
	if m.At(1, int(env.Stay)) != 3.0 {
		t.Errorf("row 1 should hold state 9, have %v", m.RawRowView(1))
	}
}
