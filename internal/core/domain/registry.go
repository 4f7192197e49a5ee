package domain

import "fmt"

// Registry is an ordered mapping of sample short names to dataset identifiers.
// Iteration order is first-insertion order; it only makes progress output
// and history deterministic.
type Registry struct {
	order    []string
	datasets map[string]string
}

// NewRegistry merges sample groups in the given order.
// A short name seen again keeps its original position and takes the later
// dataset (last write wins). Collisions are not reported and identifiers
// are not validated.
func NewRegistry(sets ...[]Sample) *Registry {
	r := &Registry{datasets: make(map[string]string)}
	for _, set := range sets {
		for _, s := range set {
			r.put(s.ShortName, s.Dataset)
		}
	}
	return r
}

// MergeRegistry builds the registry from data samples followed by
// Monte-Carlo samples, so an MC entry overrides a data entry with the
// same short name.
func MergeRegistry(data, mc []Sample) *Registry {
	return NewRegistry(data, mc)
}

func (r *Registry) put(name, dataset string) {
	if _, ok := r.datasets[name]; !ok {
		r.order = append(r.order, name)
	}
	r.datasets[name] = dataset
}

// Len returns the number of samples.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Dataset returns the dataset identifier registered for a short name.
func (r *Registry) Dataset(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	ds, ok := r.datasets[name]
	return ds, ok
}

// Entries returns the samples in iteration order.
func (r *Registry) Entries() []Sample {
	if r == nil {
		return nil
	}
	out := make([]Sample, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Sample{ShortName: name, Dataset: r.datasets[name]})
	}
	return out
}

// Select returns a registry restricted to the named samples.
// The result keeps registry order, not the order of names.
func (r *Registry) Select(names []string) (*Registry, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.Dataset(name); !ok {
			return nil, fmt.Errorf("sample %q: %w", name, ErrNotFound)
		}
		want[name] = true
	}

	selected := &Registry{datasets: make(map[string]string, len(want))}
	for _, name := range r.order {
		if want[name] {
			selected.put(name, r.datasets[name])
		}
	}
	return selected, nil
}
