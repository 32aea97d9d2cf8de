// ABOUTME: Two-page spreads for the book view
// ABOUTME: Spread 0 pairs a synthetic cover with the first page

package paginate

// NoPage marks an empty side of a spread.
const NoPage = -1

// Spread is a pair of facing pages. Left and Right are page indexes,
// NoPage for an absent page; Cover is set on the first spread, whose left
// side is the synthetic cover instead of a page.
type Spread struct {
	Index int  `json:"index"`
	Cover bool `json:"cover"`
	Left  int  `json:"left"`
	Right int  `json:"right"`
}

// Pages returns the page indexes shown on the spread, left to right.
func (s Spread) Pages() []int {
	var pages []int
	for _, p := range []int{s.Left, s.Right} {
		if p != NoPage {
			pages = append(pages, p)
		}
	}
	return pages
}

// Spreads lays out pageCount pages as facing pairs: cover and page 0,
// then pages 1 and 2, 3 and 4, and so on. There is always at least the
// cover spread.
func Spreads(pageCount int) []Spread {
	if pageCount < 0 {
		pageCount = 0
	}

	first := Spread{Index: 0, Cover: true, Left: NoPage, Right: NoPage}
	if pageCount > 0 {
		first.Right = 0
	}
	spreads := []Spread{first}

	for left := 1; left < pageCount; left += 2 {
		s := Spread{Index: len(spreads), Left: left, Right: NoPage}
		if left+1 < pageCount {
			s.Right = left + 1
		}
		spreads = append(spreads, s)
	}
	return spreads
}

// SpreadOf returns the index of the spread that shows page.
func SpreadOf(page int) int {
	if page <= 0 {
		return 0
	}
	return (page + 1) / 2
}
