package tracker

// DefaultPageSize is the number of dates shown per history page.
const DefaultPageSize = 5

// Paginate returns the 1-based page of dates: dates[(page-1)*size : page*size],
// clipped to the slice. A page past the end is empty; it is not clamped.
func Paginate(dates []string, size, page int) []string {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		return []string{}
	}
	start := (page - 1) * size
	if start >= len(dates) {
		return []string{}
	}
	end := start + size
	if end > len(dates) {
		end = len(dates)
	}
	return dates[start:end]
}

// TotalPages returns ceil(count/size), never less than 1.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
