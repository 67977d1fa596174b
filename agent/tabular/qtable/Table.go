// Package qtable implements a tabular action-value function over
// discrete driving states.
package qtable

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	env "github.com/samuelfneumann/smartcab/environment"
)

// Values holds the value of each action in a single state, indexed by
// environment.Action
type Values [env.NumActions]float64

// Table maps state keys to action values. A key is absent until it is
// first referenced with Ensure, at which point every action of that key
// is set to the same initial value. Keys are never removed.
type Table struct {
	values map[state.Key]*Values
}

// New returns a new, empty Table
func New() *Table {
	return &Table{values: make(map[state.Key]*Values)}
}

// Has returns whether k has been referenced before
func (t *Table) Has(k state.Key) bool {
	_, ok := t.values[k]
	return ok
}

// Values returns a copy of the action values of k and whether k is in
// the table
func (t *Table) Values(k state.Key) (Values, bool) {
	v, ok := t.values[k]
	if !ok {
		return Values{}, false
	}
	return *v, true
}

// Ensure adds k to the table with every action valued at init if k is
// not already present. It returns whether k was added.
func (t *Table) Ensure(k state.Key, init float64) bool {
	if t.Has(k) {
		return false
	}

	v := &Values{}
	for i := range v {
		v[i] = init
	}
	t.values[k] = v
	return true
}

// At returns the value of taking action a in state k. At panics if k
// is not in the table or a is not a valid action.
func (t *Table) At(k state.Key, a env.Action) float64 {
	return t.row(k)[a]
}

// Set sets the value of taking action a in state k. Set panics if k is
// not in the table or a is not a valid action.
func (t *Table) Set(k state.Key, a env.Action, value float64) {
	t.row(k)[a] = value
}

func (t *Table) row(k state.Key) *Values {
	v, ok := t.values[k]
	if !ok {
		panic("qtable: state " + k.String() + " not in table")
	}
	return v
}

// Len returns the number of states in the table
func (t *Table) Len() int {
	return len(t.values)
}

// Keys returns the states in the table in index order
func (t *Table) Keys() []state.Key {
	keys := make([]state.Key, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Index() < keys[j].Index()
	})
	return keys
}

// Equal returns whether two tables hold exactly the same states and
// values
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}

	for k, v := range t.values {
		o, ok := other.values[k]
		if !ok || *o != *v {
			return false
		}
	}
	return true
}

// Matrix returns the table as a Len() × environment.NumActions matrix.
// Row i holds the values of the i-th state returned by Keys. Matrix
// returns nil for an empty table.
func (t *Table) Matrix() *mat.Dense {
	keys := t.Keys()
	if len(keys) == 0 {
		return nil
	}

	m := mat.NewDense(len(keys), env.NumActions, nil)
	for i, k := range keys {
		m.SetRow(i, t.values[k][:])
	}
	return m
}
