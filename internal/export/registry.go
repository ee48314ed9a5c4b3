package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/bam"
)

// Trace maps an angle to one plottable value. Plot, export, and the
// live explorer all pull their curves from the same named set.
type Trace func(angle uint16) float64

type Registry struct {
	traces map[string]Trace
}

func NewRegistry() *Registry {
	r := &Registry{traces: make(map[string]Trace)}

	r.traces["sin"] = func(a uint16) float64 { return float64(bam.Sin(a)) }
	r.traces["cos"] = func(a uint16) float64 { return float64(bam.Cos(a)) }
	r.traces["ref-sin"] = refSin
	r.traces["ref-cos"] = refCos
	r.traces["err-sin"] = func(a uint16) float64 { return float64(bam.Sin(a)) - math.Round(refSin(a)) }
	r.traces["err-cos"] = func(a uint16) float64 { return float64(bam.Cos(a)) - math.Round(refCos(a)) }

	return r
}

func (r *Registry) Get(name string) (Trace, error) {
	tr, ok := r.traces[name]
	if !ok {
		return nil, fmt.Errorf("unknown trace: %s (available: %v)", name, r.List())
	}
	return tr, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.traces))
	for name := range r.traces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func refSin(a uint16) float64 {
	return bam.Amplitude * math.Sin(2*math.Pi*float64(a)/bam.Turn)
}

func refCos(a uint16) float64 {
	return bam.Amplitude * math.Cos(2*math.Pi*float64(a)/bam.Turn)
}
