package bplus

// binarySearch returns the index of key among the leaf entries, or -1.
func binarySearch(entries []Entry, key int) int {
	low := 0
	high := len(entries) - 1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case entries[mid].Key == key:
			return mid
		case entries[mid].Key < key:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1
}

// upperBound returns the index of the first key strictly greater than target.
// This is the child slot to descend into.
func upperBound(keys []int, target int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if keys[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// entryUpperBound is upperBound over leaf entries, so a repeated key lands
// after the entries already holding it.
func entryUpperBound(entries []Entry, key int) int {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if entries[mid].Key <= key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// lowerBound returns the index of the first entry with key >= target.
func lowerBound(entries []Entry, target int) int {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if entries[mid].Key < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insert inserts elem at index i in slice.
func insert[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}
