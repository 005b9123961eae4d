// Package datasets implements the boolean dataset type
package datasets

// Dataset maps an input value to its boolean label
type Dataset map[uint32]bool

func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

type SplittedDataset [2]map[uint32]struct{}

// SplitDataset splits dataset into a false set (0) and a true set (1)
func SplitDataset(d Dataset) (o SplittedDataset) {
	o[0] = make(map[uint32]struct{})
	o[1] = make(map[uint32]struct{})
	for k, v := range d {
		if v {
			o[1][k] = struct{}{}
		} else {
			o[0][k] = struct{}{}
		}
	}
	return
}
