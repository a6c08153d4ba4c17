package sortbench

// Sorter is a sorting strategy under measurement. Sort arranges data in
// non-decreasing order in place; implementations may destroy their input,
// since the runner hands every Sort call a fresh dataset.
type Sorter interface {
	// Name returns the strategy's display name, used in reports.
	Name() string
	// Sort orders data in place, ascending.
	Sort(data []int)
}

// BubbleSort repeatedly sweeps the slice, swapping adjacent out-of-order
// pairs. A sweep with no swaps ends the sort early; nearly-sorted input
// finishes in close to linear time.
type BubbleSort struct{}

// Name implements [Sorter].
func (BubbleSort) Name() string { return "Bubble Sort" }

// Sort implements [Sorter].
func (BubbleSort) Sort(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// SelectionSort grows a sorted prefix by repeatedly selecting the minimum
// of the unsorted suffix. It swaps only when the minimum actually moved.
type SelectionSort struct{}

// Name implements [Sorter].
func (SelectionSort) Name() string { return "Selection Sort" }

// Sort implements [Sorter].
func (SelectionSort) Sort(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
		}
	}
}

// InsertionSort grows a sorted prefix by shifting each new element left
// until it reaches its position.
type InsertionSort struct{}

// Name implements [Sorter].
func (InsertionSort) Name() string { return "Insertion Sort" }

// Sort implements [Sorter].
func (InsertionSort) Sort(data []int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// Strategies returns the built-in sorters in their canonical report order.
// The slice is freshly allocated on each call.
func Strategies() []Sorter {
	return []Sorter{BubbleSort{}, SelectionSort{}, InsertionSort{}}
}

// IsSorted reports whether data is in non-decreasing order. Empty and
// single-element slices are sorted.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
