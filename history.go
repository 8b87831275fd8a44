package lz5

// repeatInfo is the transient result of a longest-match query: a match of
// size bytes starting at startIndex in the source the historyIndex was
// built over.
type repeatInfo struct {
	startIndex int
	size       int
}

// historyIndex maps each observed ordered byte pair to the ordered list of
// source positions at which it occurs. It is flattened into a single
// 65536-entry table keyed by (a<<8)|b rather than a two-level byte->byte
// map, trading a fixed block of slice headers for one less indirection;
// either shape satisfies the contract (insertion-order preservation,
// efficient bounded iteration per bucket).
type historyIndex struct {
	source  []byte
	buckets [][]int
}

func newHistoryIndex(source []byte) *historyIndex {
	return &historyIndex{source: source, buckets: make([][]int, 1<<16)}
}

func bucketKey(a, b byte) int { return int(a)<<8 | int(b) }

// insert records that source[pos] == a and source[pos+1] == b. Callers
// must insert with strictly increasing pos so that bucket lists stay in
// insertion order.
func (h *historyIndex) insert(a, b byte, pos int) {
	key := bucketKey(a, b)
	h.buckets[key] = append(h.buckets[key], pos)
}

// findLongestRepeat returns the longest earlier run in the indexed source
// that matches the start of window, among positions >= lowerBound.
func (h *historyIndex) findLongestRepeat(window []byte, lowerBound int) (repeatInfo, bool) {
	return h.search(window, lowerBound, false)
}

// findLongestRepeatXOR is identical to findLongestRepeat, except the
// earlier run is compared against window after XOR-ing each byte with
// 0xFF.
func (h *historyIndex) findLongestRepeatXOR(window []byte, lowerBound int) (repeatInfo, bool) {
	return h.search(window, lowerBound, true)
}

func (h *historyIndex) search(window []byte, lowerBound int, xor bool) (repeatInfo, bool) {
	if len(window) < 2 {
		return repeatInfo{}, false
	}
	a, b := window[0], window[1]
	if xor {
		a, b = a^0xFF, b^0xFF
	}

	var best repeatInfo
	found := false
	for _, p := range h.buckets[bucketKey(a, b)] {
		if p < lowerBound {
			continue
		}
		size := 0
		for p+size < len(h.source) && size < len(window) {
			candidate := h.source[p+size]
			if xor {
				candidate ^= 0xFF
			}
			if candidate != window[size] {
				break
			}
			size++
		}
		if size > best.size {
			best = repeatInfo{startIndex: p, size: size}
			found = true
		}
	}
	return best, found
}
