package maf

// Record is one SNP row of a count file.
type Record struct {
	Name string
	Ref  int // ReferenceAlleleCount
	Alt  int // AlternateAlleleCount
}

// Total is the number of observed alleles. It is summed in floating point so
// that counts near math.MaxInt cannot overflow.
func (r Record) Total() float64 {
	return float64(r.Ref) + float64(r.Alt)
}
