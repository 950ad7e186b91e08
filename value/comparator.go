package value

// Comparator orders two keys for heap.Heap. A negative result means a is
// higher priority than b; positive means b is higher priority; zero means
// they are equal priority. heap.Heap always extracts the minimum per this
// ordering.
type Comparator func(a, b Value) int

// IntAscending orders integer keys so the smallest value has the highest
// priority (a standard min-heap over integers).
func IntAscending(a, b Value) int {
	switch {
	case a.Int() < b.Int():
		return -1
	case a.Int() > b.Int():
		return 1
	default:
		return 0
	}
}

// IntDescending orders integer keys so the largest value has the highest
// priority.
func IntDescending(a, b Value) int {
	switch {
	case a.Int() > b.Int():
		return -1
	case a.Int() < b.Int():
		return 1
	default:
		return 0
	}
}

// FloatAscending orders float keys so the smallest value has the highest
// priority.
func FloatAscending(a, b Value) int {
	switch {
	case a.Float() < b.Float():
		return -1
	case a.Float() > b.Float():
		return 1
	default:
		return 0
	}
}

// FloatDescending orders float keys so the largest value has the highest
// priority.
func FloatDescending(a, b Value) int {
	switch {
	case a.Float() > b.Float():
		return -1
	case a.Float() < b.Float():
		return 1
	default:
		return 0
	}
}
