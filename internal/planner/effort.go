package planner

import (
	"errors"
	"math"

	"github.com/mohammad-safakhou/studyplan/internal/catalog"
)

// ErrEffortSum rejects a plan whose effort percentages do not total 100.
var ErrEffortSum = errors.New("the total effort percentage must equal 100")

// Allocation maps each study item to its effort percentage, preserving the
// catalog's item order. That order decides the sequence of blocks within
// every day's window.
type Allocation struct {
	names    []string
	percents map[string]float64
}

// Allocate pairs items with their submitted percentages. An item with no
// entry in percents is allocated 0.
func Allocate(items []catalog.StudyItem, percents map[string]float64) *Allocation {
	a := &Allocation{percents: make(map[string]float64, len(items))}
	for _, item := range items {
		a.names = append(a.names, item.Name)
		a.percents[item.Name] = percents[item.Name]
	}
	return a
}

// Names returns item names in allocation order.
func (a *Allocation) Names() []string { return a.names }

// Percent returns the share assigned to name.
func (a *Allocation) Percent(name string) float64 { return a.percents[name] }

// Sum totals all percentages.
func (a *Allocation) Sum() float64 {
	var total float64
	for _, name := range a.names {
		total += a.percents[name]
	}
	return total
}

// ValidateTotal checks the 100% invariant. epsilon widens the accepted band
// around 100; the default configuration passes 0, which demands exact
// floating-point equality like a sum built from whole percentages gives.
func (a *Allocation) ValidateTotal(epsilon float64) error {
	if math.Abs(a.Sum()-100) > epsilon {
		return ErrEffortSum
	}
	return nil
}
