package series

type Sample struct {
	At    int64   `yaml:"at" json:"at"`
	Price float64 `yaml:"price" json:"price"`
}

// Dataset is ordered ascending by At. Nothing in this module sorts it.
type Dataset []Sample

// Key identifies a dataset by its backing array head and length. It is
// cheap to compute on every interaction frame.
type Key struct {
	head *Sample
	n    int
}

func (ds Dataset) Key() Key {
	if len(ds) == 0 {
		return Key{}
	}

	return Key{
		head: &ds[0],
		n:    len(ds),
	}
}

func (ds Dataset) Empty() bool {
	return len(ds) == 0
}

func (ds Dataset) First() Sample {
	return ds[0]
}

func (ds Dataset) Last() Sample {
	return ds[len(ds)-1]
}

// TimeExtent scans the whole dataset rather than trusting the order.
func (ds Dataset) TimeExtent() (minAt, maxAt int64, ok bool) {
	if len(ds) == 0 {
		return
	}

	minAt, maxAt = ds[0].At, ds[0].At

	for _, s := range ds[1:] {
		if s.At < minAt {
			minAt = s.At
		}

		if s.At > maxAt {
			maxAt = s.At
		}
	}

	ok = true

	return
}

func (ds Dataset) PriceExtent() (minPrice, maxPrice float64, ok bool) {
	if len(ds) == 0 {
		return
	}

	minPrice, maxPrice = ds[0].Price, ds[0].Price

	for _, s := range ds[1:] {
		if s.Price < minPrice {
			minPrice = s.Price
		}

		if s.Price > maxPrice {
			maxPrice = s.Price
		}
	}

	ok = true

	return
}

// Sorted reports whether the dataset satisfies the ordering precondition.
func (ds Dataset) Sorted() bool {
	for idx := 1; idx < len(ds); idx++ {
		if ds[idx].At < ds[idx-1].At {
			return false
		}
	}

	return true
}
