package maf

// Result maps SNP names to their MAF. Names iterate in the order they were
// first seen; setting a name again replaces its value without moving it.
type Result struct {
	names  []string
	values map[string]float64
}

func NewResult() *Result {
	return &Result{
		values: make(map[string]float64),
	}
}

func (r *Result) Set(name string, maf float64) {
	if _, exists := r.values[name]; !exists {
		r.names = append(r.names, name)
	}
	r.values[name] = maf
}

func (r *Result) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r *Result) Len() int {
	return len(r.names)
}

// Names returns a copy of the SNP names in iteration order.
func (r *Result) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Values returns the MAFs in iteration order.
func (r *Result) Values() []float64 {
	out := make([]float64, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.values[name])
	}
	return out
}

func (r *Result) Each(fn func(name string, maf float64)) {
	for _, name := range r.names {
		fn(name, r.values[name])
	}
}

// Count returns the number of SNPs whose MAF lies within rng.
func (r *Result) Count(rng Range) int {
	count := 0
	for _, v := range r.values {
		if rng.Contains(v) {
			count++
		}
	}
	return count
}

// Calculate computes the MAF of every record. It stops at the first record
// whose counts sum to zero.
func Calculate(records []Record) (*Result, error) {
	out := NewResult()

	for _, rec := range records {
		v, err := rec.MAF()
		if err != nil {
			return nil, &ZeroCountError{Name: rec.Name}
		}
		out.Set(rec.Name, v)
	}

	return out, nil
}
