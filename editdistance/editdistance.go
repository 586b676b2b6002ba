// Package editdistance provides a bounded optimal string alignment (OSA)
// edit-distance verifier: insertion, deletion and substitution each cost 1,
// and an adjacent transposition costs 1, but a transposed pair may not be
// edited again.
package editdistance

// Sentinel is returned whenever the true distance exceeds the caller's
// maxDistance. Keeping an integer sentinel instead of an error keeps the
// hot path allocation-free.
const Sentinel = -1

// Verifier computes bounded OSA distances. It owns scratch rows that are
// resized on demand and reused across calls; a Verifier must not be shared
// across goroutines without external synchronisation.
type Verifier struct {
	curCosts  []int
	prevCosts []int
}

// New creates a Verifier with empty scratch rows.
func New() *Verifier {
	return &Verifier{}
}

// Distance returns the OSA edit distance between a and b if it is at most
// maxDistance, or Sentinel otherwise. A nil/empty argument is treated as the
// empty string.
func (v *Verifier) Distance(a, b string, maxDistance int) int {
	if a == b {
		return 0
	}

	if maxDistance <= 0 {
		return Sentinel
	}

	ra, rb := []rune(a), []rune(b)

	// Normalise so ra is the shorter slice.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(rb)-len(ra) > maxDistance {
		return Sentinel
	}

	if len(ra) == 0 {
		if len(rb) <= maxDistance {
			return len(rb)
		}
		return Sentinel
	}

	// Prefix/suffix trim: the interior substrings share the same distance
	// as the originals.
	p := commonPrefixLen(ra, rb)
	s := commonSuffixLen(ra, rb, p)

	m := len(ra) - p - s
	n := len(rb) - p - s

	if m == 0 {
		if n <= maxDistance {
			return n
		}
		return Sentinel
	}

	interiorA := ra[p : p+m]
	interiorB := rb[p : p+n]

	v.ensure(n)

	if maxDistance >= n {
		return unbanded(interiorA, interiorB, m, n, v.curCosts, v.prevCosts)
	}
	return banded(interiorA, interiorB, m, n, maxDistance, v.curCosts, v.prevCosts)
}

func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffixLen(a, b []rune, prefix int) int {
	i, j := len(a), len(b)
	count := 0
	for i > prefix && j > prefix && a[i-1] == b[j-1] {
		i--
		j--
		count++
	}
	return count
}

// unbanded runs the full rolling-row OSA DP with no column windowing, used
// when maxDistance is already large enough that banding buys nothing.
func unbanded(a, b []rune, m, n int, curCosts, prevCosts []int) int {
	for j := 0; j < n; j++ {
		curCosts[j] = j + 1
	}

	var char1, prevChar1 rune
	var currentCost int

	for i := 0; i < m; i++ {
		prevChar1 = char1
		char1 = a[i]

		var char2, prevChar2 rune
		leftCost := i
		aboveCost := i
		nextTransCost := 0

		for j := 0; j < n; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCosts[j]
			currentCost = leftCost
			prevCosts[j] = currentCost
			leftCost = curCosts[j]
			prevChar2 = char2
			char2 = b[j]

			if char1 != char2 {
				if aboveCost < currentCost {
					currentCost = aboveCost
				}
				if leftCost < currentCost {
					currentCost = leftCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			curCosts[j] = currentCost
			aboveCost = currentCost
		}
	}

	return currentCost
}

// banded runs the windowed OSA DP: only a diagonal band of half-width
// derived from maxDistance and the length difference is evaluated; cells
// outside the band are implicitly maxDistance+1.
func banded(a, b []rune, m, n, maxDistance int, curCosts, prevCosts []int) int {
	for j := 0; j < maxDistance; j++ {
		curCosts[j] = j + 1
	}
	for j := maxDistance; j < n; j++ {
		curCosts[j] = maxDistance + 1
	}

	lenDiff := n - m
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance

	var char1, prevChar1 rune
	var currentCost int

	for i := 0; i < m; i++ {
		prevChar1 = char1
		char1 = a[i]

		var char2, prevChar2 rune
		leftCost := i
		aboveCost := i
		nextTransCost := 0

		if i > jStartOffset {
			jStart++
		}
		if jEnd < n {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCosts[j]
			currentCost = leftCost
			prevCosts[j] = currentCost
			leftCost = curCosts[j]
			prevChar2 = char2
			char2 = b[j]

			if char1 != char2 {
				if aboveCost < currentCost {
					currentCost = aboveCost
				}
				if leftCost < currentCost {
					currentCost = leftCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			curCosts[j] = currentCost
			aboveCost = currentCost
		}

		if curCosts[i+lenDiff] > maxDistance {
			return Sentinel
		}
	}

	if currentCost <= maxDistance {
		return currentCost
	}
	return Sentinel
}

func (v *Verifier) ensure(n int) {
	if cap(v.curCosts) < n {
		v.curCosts = make([]int, n)
		v.prevCosts = make([]int, n)
		return
	}
	v.curCosts = v.curCosts[:n]
	v.prevCosts = v.prevCosts[:n]
}
