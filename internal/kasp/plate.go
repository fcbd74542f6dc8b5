// Package kasp models KlusterCaller KASP genotyping plates and renders
// diagnostic scatter plots from their fluorophore readings.
package kasp

import (
	"fmt"
	"sort"
)

// Well is a single microtiter plate well with its raw fluorophore readings.
type Well struct {
	RowCol string // row letter + zero-padded column, e.g. "A01"
	Sample string
	FAM    int // excitation 485 nm; emission 520 nm
	HEX    int // excitation 535 nm; emission 556 nm
	ROX    int // passive reference; excitation 575 nm; emission 610 nm
}

// NormFAM returns the FAM signal normalised against the ROX reference.
func (w Well) NormFAM() float64 {
	return float64(w.FAM) / float64(w.ROX)
}

// NormHEX returns the HEX signal normalised against the ROX reference.
func (w Well) NormHEX() float64 {
	return float64(w.HEX) / float64(w.ROX)
}

func (w Well) String() string {
	return fmt.Sprintf("Well %s labelled '%s': (%d, %d, %d)", w.RowCol, w.Sample, w.FAM, w.HEX, w.ROX)
}

// Plate is a named KASP microtiter plate.
type Plate struct {
	Name  string
	Wells []Well
}

// NewPlate builds a plate with its wells sorted by coordinate.
func NewPlate(name string, wells []Well) *Plate {
	sorted := make([]Well, len(wells))
	copy(sorted, wells)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RowCol < sorted[j].RowCol
	})
	return &Plate{Name: name, Wells: sorted}
}

// NumWells returns the number of wells on the plate.
func (p *Plate) NumWells() int {
	return len(p.Wells)
}

func (p *Plate) String() string {
	return fmt.Sprintf("%d well plate named '%s'", p.NumWells(), p.Name)
}
