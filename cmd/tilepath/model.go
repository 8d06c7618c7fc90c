package main

import (
	"github.com/katalvlaran/tilepath/mapfile"
	"github.com/katalvlaran/tilepath/pathsearch"
)

// viewModel is the viewer's state. It keeps one live Run and only rebuilds
// it when the budget shrinks or the algorithm or policy changes; growing
// the budget advances the existing Run.
type viewModel struct {
	sc   *mapfile.Scenario
	run  *pathsearch.Run
	res  *pathsearch.Result
	step int
}

func newViewModel(sc *mapfile.Scenario) (*viewModel, error) {
	m := &viewModel{sc: sc, step: 1}
	if err := m.rebuild(sc.Iterations); err != nil {
		return nil, err
	}
	return m, nil
}

// rebuild starts a fresh run and advances it to budget. The scenario's
// budget only changes once the run is in place.
func (m *viewModel) rebuild(budget int) error {
	run, err := m.sc.NewRun()
	if err != nil {
		return err
	}
	if err = run.Advance(budget); err != nil {
		return err
	}
	m.run, m.res, m.sc.Iterations = run, run.Result(), budget
	return nil
}

// setBudget moves the budget to n (clamped at zero). On error the budget and
// the shown result stay as they were.
func (m *viewModel) setBudget(n int) error {
	if n < 0 {
		n = 0
	}
	prev := m.sc.Iterations
	if n < prev || m.run == nil {
		return m.rebuild(n)
	}
	if err := m.run.Advance(n - prev); err != nil {
		// the run stopped part-way; start over on the next change
		m.run = nil
		return err
	}
	m.sc.Iterations = n
	m.res = m.run.Result()
	return nil
}

func (m *viewModel) grow() error   { return m.setBudget(m.sc.Iterations + m.step) }
func (m *viewModel) shrink() error { return m.setBudget(m.sc.Iterations - m.step) }

// cycleStep walks the budget increment through 1, 10, 100.
func (m *viewModel) cycleStep() {
	m.step *= 10
	if m.step > 100 {
		m.step = 1
	}
}

func (m *viewModel) toggleKind() error {
	prev := m.sc.Kind
	if prev == pathsearch.Weighted {
		m.sc.Kind = pathsearch.Unweighted
	} else {
		m.sc.Kind = pathsearch.Weighted
	}
	if err := m.rebuild(m.sc.Iterations); err != nil {
		m.sc.Kind = prev
		return err
	}
	return nil
}

func (m *viewModel) toggleBlocked() error {
	prev := m.sc.Blocked
	if prev == pathsearch.BlockedImpassable {
		m.sc.Blocked = pathsearch.BlockedExpensive
	} else {
		m.sc.Blocked = pathsearch.BlockedImpassable
	}
	if err := m.rebuild(m.sc.Iterations); err != nil {
		m.sc.Blocked = prev
		return err
	}
	return nil
}
