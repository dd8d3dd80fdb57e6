package decode

import (
	"github.com/velhart/rnafold/pairing"
)

// blossom - exact maximum-weight general matching decoding.
//
// Description:
//
//	Build an undirected weighted graph with one node per sequence
//	position and an edge (i, j, weight) for every preprocessed entry
//	strictly above the score floor, then compute a maximum-weight
//	matching with Edmonds' blossom algorithm (Galil / van Rantwijk
//	primal-dual formulation). Crossing pairs are permitted, so this is
//	the one decoder able to represent pseudoknots. The matching
//	invariant is structural: a matching never touches a node twice.
//
// Edge order follows the row-major upper triangle, and the algorithm is
// deterministic for a fixed edge order, so decodes are reproducible.
//
// If no edge clears the floor the empty PairSet is returned.
//
// Complexity: O(V·E·log V) typical, O(L³) worst case on dense inputs;
// O(L²) space.
func blossom(scores *pairing.Matrix, opts Options) pairing.PairSet {
	n := scores.N()
	floor := opts.floor()

	edges := make([]matchEdge, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if scores.At(i, j) > floor {
				edges = append(edges, matchEdge{i: i, j: j, w: scores.At(i, j)})
			}
		}
	}
	if len(edges) == 0 {
		return pairing.PairSet{}
	}

	mate := maxWeightMatching(n, edges)

	out := make(pairing.PairSet, 0, n/2)
	for v := 0; v < n; v++ {
		if mate[v] > v {
			out = append(out, pairing.Pair{I: v, J: mate[v]})
		}
	}

	return out
}

// matchEdge is one weighted edge of the matching graph, i < j.
type matchEdge struct {
	i, j int
	w    float64
}

// matcher holds the working state of the primal-dual blossom algorithm.
// Index convention, after van Rantwijk's reference formulation:
//   - vertices are 0..nv-1, blossoms nv..2·nv-1;
//   - edge k has endpoints 2k (edges[k].i) and 2k+1 (edges[k].j);
//   - mate[v] is the remote endpoint of v's matched edge, or -1;
//   - label: 0 free, 1 S (outer), 2 T (inner), +4 is a scan breadcrumb.
type matcher struct {
	nv    int
	edges []matchEdge

	endpoint  []int   // endpoint[p]: vertex at endpoint p
	neighbend [][]int // neighbend[v]: remote endpoints of v's edges

	mate     []int
	label    []int
	labelend []int

	inblossom     []int
	blossomparent []int
	blossomchilds [][]int
	blossombase   []int
	blossomendps  [][]int

	bestedge        []int
	blossombestedge [][]int
	unusedblossoms  []int

	dualvar   []float64
	allowedge []bool
	queue     []int
}

// maxWeightMatching computes a maximum-weight matching and returns
// mate[v] = partner vertex or -1. Weights must be positive here (the
// caller filters by the score floor), so every matched edge improves
// the total and maximum cardinality is never forced.
func maxWeightMatching(n int, edges []matchEdge) []int {
	m := newMatcher(n, edges)
	m.run()

	// Convert mates from endpoint indices to vertex indices.
	out := make([]int, n)
	for v := 0; v < n; v++ {
		if m.mate[v] >= 0 {
			out[v] = m.endpoint[m.mate[v]]
		} else {
			out[v] = -1
		}
	}

	return out
}

func newMatcher(n int, edges []matchEdge) *matcher {
	m := &matcher{nv: n, edges: edges}

	maxWeight := 0.0
	for _, e := range edges {
		if e.w > maxWeight {
			maxWeight = e.w
		}
	}

	ne := len(edges)
	m.endpoint = make([]int, 2*ne)
	m.neighbend = make([][]int, n)
	for k, e := range edges {
		m.endpoint[2*k] = e.i
		m.endpoint[2*k+1] = e.j
		m.neighbend[e.i] = append(m.neighbend[e.i], 2*k+1)
		m.neighbend[e.j] = append(m.neighbend[e.j], 2*k)
	}

	m.mate = filled(n, -1)
	m.label = make([]int, 2*n)
	m.labelend = filled(2*n, -1)
	m.inblossom = iota2(n)
	m.blossomparent = filled(2*n, -1)
	m.blossomchilds = make([][]int, 2*n)
	m.blossombase = append(iota2(n), filled(n, -1)...)
	m.blossomendps = make([][]int, 2*n)
	m.bestedge = filled(2*n, -1)
	m.blossombestedge = make([][]int, 2*n)
	m.unusedblossoms = make([]int, 0, n)
	for b := n; b < 2*n; b++ {
		m.unusedblossoms = append(m.unusedblossoms, b)
	}
	m.dualvar = make([]float64, 2*n)
	for v := 0; v < n; v++ {
		m.dualvar[v] = maxWeight
	}
	m.allowedge = make([]bool, ne)

	return m
}

// slack returns the dual slack of edge k; an edge is tight when zero.
func (m *matcher) slack(k int) float64 {
	e := m.edges[k]

	return m.dualvar[e.i] + m.dualvar[e.j] - 2*e.w
}

// leaves appends all vertices contained in blossom b (or b itself if it
// is a vertex) to dst and returns it.
func (m *matcher) leaves(b int, dst []int) []int {
	if b < m.nv {
		return append(dst, b)
	}
	for _, c := range m.blossomchilds[b] {
		dst = m.leaves(c, dst)
	}

	return dst
}

// assignLabel labels the top-level blossom of w with t, remembering the
// edge endpoint p through which the label arrived, then propagates:
// S-blossoms enqueue their vertices, T-blossoms immediately S-label
// their mate.
func (m *matcher) assignLabel(w, t, p int) {
	b := m.inblossom[w]
	m.label[w] = t
	m.label[b] = t
	m.labelend[w] = p
	m.labelend[b] = p
	m.bestedge[w] = -1
	m.bestedge[b] = -1
	if t == 1 {
		m.queue = m.leaves(b, m.queue)
	} else if t == 2 {
		base := m.blossombase[b]
		m.assignLabel(m.endpoint[m.mate[base]], 1, m.mate[base]^1)
	}
}

// scanBlossom traces back from v and w through alternating paths,
// dropping breadcrumbs, until the paths meet (returning the common base,
// to form a new blossom) or both hit single vertices (returning -1, an
// augmenting path).
func (m *matcher) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := m.inblossom[v]
		if m.label[b]&4 != 0 {
			base = m.blossombase[b]
			break
		}
		path = append(path, b)
		m.label[b] = 5
		if m.labelend[b] == -1 {
			v = -1 // base of b is single; this path ends
		} else {
			v = m.endpoint[m.labelend[b]]
			b = m.inblossom[v]
			// b is a T-blossom; step through it as well.
			v = m.endpoint[m.labelend[b]]
		}
		if w != -1 {
			v, w = w, v // alternate between the two paths
		}
	}
	for _, b := range path {
		m.label[b] = 1 // remove breadcrumbs
	}

	return base
}

// addBlossom folds the cycle through edge k with common base into a new
// blossom, relabels its vertices S, and recomputes least-slack edges.
func (m *matcher) addBlossom(base, k int) {
	v, w := m.edges[k].i, m.edges[k].j
	bb := m.inblossom[base]
	bv := m.inblossom[v]
	bw := m.inblossom[w]

	b := m.unusedblossoms[len(m.unusedblossoms)-1]
	m.unusedblossoms = m.unusedblossoms[:len(m.unusedblossoms)-1]

	m.blossombase[b] = base
	m.blossomparent[b] = -1
	m.blossomparent[bb] = b

	var path, endps []int

	// Trace from v down to the base.
	for bv != bb {
		m.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, m.labelend[bv])
		v = m.endpoint[m.labelend[bv]]
		bv = m.inblossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)

	// Trace from w down to the base.
	for bw != bb {
		m.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, m.labelend[bw]^1)
		w = m.endpoint[m.labelend[bw]]
		bw = m.inblossom[w]
	}

	m.blossomchilds[b] = path
	m.blossomendps[b] = endps
	m.label[b] = 1
	m.labelend[b] = m.labelend[bb]
	m.dualvar[b] = 0

	for _, leaf := range m.leaves(b, nil) {
		if m.label[m.inblossom[leaf]] == 2 {
			// Former T-vertex turns S inside the new blossom: scan it.
			m.queue = append(m.queue, leaf)
		}
		m.inblossom[leaf] = b
	}

	// Compute the least-slack edge to every other S-blossom.
	bestedgeto := filled(2*m.nv, -1)
	for _, child := range path {
		var lists [][]int
		if m.blossombestedge[child] == nil {
			for _, leaf := range m.leaves(child, nil) {
				ks := make([]int, 0, len(m.neighbend[leaf]))
				for _, p := range m.neighbend[leaf] {
					ks = append(ks, p/2)
				}
				lists = append(lists, ks)
			}
		} else {
			lists = [][]int{m.blossombestedge[child]}
		}
		for _, list := range lists {
			for _, ek := range list {
				j := m.edges[ek].j
				if m.inblossom[j] == b {
					j = m.edges[ek].i
				}
				bj := m.inblossom[j]
				if bj != b && m.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || m.slack(ek) < m.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ek
				}
			}
		}
		m.blossombestedge[child] = nil
		m.bestedge[child] = -1
	}
	best := make([]int, 0, len(bestedgeto))
	for _, ek := range bestedgeto {
		if ek != -1 {
			best = append(best, ek)
		}
	}
	m.blossombestedge[b] = best
	m.bestedge[b] = -1
	for _, ek := range best {
		if m.bestedge[b] == -1 || m.slack(ek) < m.slack(m.bestedge[b]) {
			m.bestedge[b] = ek
		}
	}
}

// expandBlossom dissolves blossom b into its children, either at the
// end of a stage (endstage) when its dual hit zero, or mid-stage when a
// T-blossom must be opened to continue the search.
func (m *matcher) expandBlossom(b int, endstage bool) {
	for _, s := range m.blossomchilds[b] {
		m.blossomparent[s] = -1
		if s < m.nv {
			m.inblossom[s] = s
		} else if endstage && m.dualvar[s] == 0 {
			m.expandBlossom(s, endstage)
		} else {
			for _, leaf := range m.leaves(s, nil) {
				m.inblossom[leaf] = s
			}
		}
	}

	if !endstage && m.label[b] == 2 {
		// Relabel the children along the cycle, starting from the child
		// through which b got its T label, ending at the base.
		entrychild := m.inblossom[m.endpoint[m.labelend[b]^1]]
		j := indexOf(m.blossomchilds[b], entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			j -= len(m.blossomchilds[b]) // odd: go forward and wrap
			jstep = 1
			endptrick = 0
		} else {
			jstep = -1 // even: go backward
			endptrick = 1
		}
		p := m.labelend[b]
		for j != 0 {
			m.label[m.endpoint[p^1]] = 0
			m.label[m.endpoint[at(m.blossomendps[b], j-endptrick)^endptrick^1]] = 0
			m.assignLabel(m.endpoint[p^1], 2, p)
			m.allowedge[at(m.blossomendps[b], j-endptrick)/2] = true
			j += jstep
			p = at(m.blossomendps[b], j-endptrick) ^ endptrick
			m.allowedge[p/2] = true
			j += jstep
		}
		// Base child keeps label T without stepping to its mate.
		bv := at(m.blossomchilds[b], j)
		m.label[m.endpoint[p^1]] = 2
		m.label[bv] = 2
		m.labelend[m.endpoint[p^1]] = p
		m.labelend[bv] = p
		m.bestedge[bv] = -1
		// Children between base and entrychild get label T if reachable.
		j += jstep
		for at(m.blossomchilds[b], j) != entrychild {
			bv = at(m.blossomchilds[b], j)
			if m.label[bv] == 1 {
				j += jstep
				continue
			}
			labeled := -1
			for _, leaf := range m.leaves(bv, nil) {
				if m.label[leaf] != 0 {
					labeled = leaf
					break
				}
			}
			if labeled != -1 {
				m.label[labeled] = 0
				m.label[m.endpoint[m.mate[m.blossombase[bv]]]] = 0
				m.assignLabel(labeled, 2, m.labelend[labeled])
			}
			j += jstep
		}
	}

	m.label[b] = -1
	m.labelend[b] = -1
	m.blossomchilds[b] = nil
	m.blossomendps[b] = nil
	m.blossombase[b] = -1
	m.blossombestedge[b] = nil
	m.bestedge[b] = -1
	m.unusedblossoms = append(m.unusedblossoms, b)
}

// augmentBlossom swaps matched/unmatched edges around blossom b so that
// vertex v becomes its new base, recursing into sub-blossoms.
func (m *matcher) augmentBlossom(b, v int) {
	t := v
	for m.blossomparent[t] != b {
		t = m.blossomparent[t]
	}
	if t >= m.nv {
		m.augmentBlossom(t, v)
	}

	i := indexOf(m.blossomchilds[b], t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= len(m.blossomchilds[b])
		jstep = 1
		endptrick = 0
	} else {
		jstep = -1
		endptrick = 1
	}
	for j != 0 {
		j += jstep
		t = at(m.blossomchilds[b], j)
		p := at(m.blossomendps[b], j-endptrick) ^ endptrick
		if t >= m.nv {
			m.augmentBlossom(t, m.endpoint[p])
		}
		j += jstep
		t = at(m.blossomchilds[b], j)
		if t >= m.nv {
			m.augmentBlossom(t, m.endpoint[p^1])
		}
		m.mate[m.endpoint[p]] = p ^ 1
		m.mate[m.endpoint[p^1]] = p
	}

	m.blossomchilds[b] = rotate(m.blossomchilds[b], i)
	m.blossomendps[b] = rotate(m.blossomendps[b], i)
	m.blossombase[b] = m.blossombase[m.blossomchilds[b][0]]
}

// augmentMatching flips matched and unmatched edges along the augmenting
// path through tight edge k, from both of its endpoints down to the
// respective single vertices.
func (m *matcher) augmentMatching(k int) {
	starts := [2][2]int{
		{m.edges[k].i, 2*k + 1},
		{m.edges[k].j, 2 * k},
	}
	for _, sp := range starts {
		s, p := sp[0], sp[1]
		for {
			bs := m.inblossom[s]
			if bs >= m.nv {
				m.augmentBlossom(bs, s)
			}
			m.mate[s] = p
			if m.labelend[bs] == -1 {
				break // reached a single vertex
			}
			t := m.endpoint[m.labelend[bs]]
			bt := m.inblossom[t]
			s = m.endpoint[m.labelend[bt]]
			j := m.endpoint[m.labelend[bt]^1]
			if bt >= m.nv {
				m.augmentBlossom(bt, j)
			}
			m.mate[j] = m.labelend[bt]
			p = m.labelend[bt] ^ 1
		}
	}
}

// run executes the main stage loop: each stage finds one augmenting
// path (growing the matching by one edge) or proves optimality via the
// dual bound and stops.
func (m *matcher) run() {
	n := m.nv
	for stage := 0; stage < n; stage++ {
		for i := range m.label {
			m.label[i] = 0
		}
		for i := range m.bestedge {
			m.bestedge[i] = -1
		}
		for b := n; b < 2*n; b++ {
			m.blossombestedge[b] = nil
		}
		for i := range m.allowedge {
			m.allowedge[i] = false
		}
		m.queue = m.queue[:0]

		for v := 0; v < n; v++ {
			if m.mate[v] == -1 && m.label[m.inblossom[v]] == 0 {
				m.assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			for len(m.queue) > 0 && !augmented {
				v := m.queue[len(m.queue)-1]
				m.queue = m.queue[:len(m.queue)-1]
				for _, p := range m.neighbend[v] {
					k := p / 2
					w := m.endpoint[p]
					if m.inblossom[v] == m.inblossom[w] {
						continue // internal edge of a blossom
					}
					var kslack float64
					if !m.allowedge[k] {
						kslack = m.slack(k)
						if kslack <= 0 {
							m.allowedge[k] = true
						}
					}
					if m.allowedge[k] {
						switch {
						case m.label[m.inblossom[w]] == 0:
							m.assignLabel(w, 2, p^1)
						case m.label[m.inblossom[w]] == 1:
							base := m.scanBlossom(v, w)
							if base >= 0 {
								m.addBlossom(base, k)
							} else {
								m.augmentMatching(k)
								augmented = true
							}
						case m.label[w] == 0:
							m.label[w] = 2
							m.labelend[w] = p ^ 1
						}
						if augmented {
							break
						}
					} else if m.label[m.inblossom[w]] == 1 {
						b := m.inblossom[v]
						if m.bestedge[b] == -1 || kslack < m.slack(m.bestedge[b]) {
							m.bestedge[b] = k
						}
					} else if m.label[w] == 0 {
						if m.bestedge[w] == -1 || kslack < m.slack(m.bestedge[w]) {
							m.bestedge[w] = k
						}
					}
				}
			}
			if augmented {
				break
			}

			// No more tight edges: compute the cheapest dual change.
			deltatype := 1
			delta := m.dualvar[0]
			for v := 1; v < n; v++ {
				if m.dualvar[v] < delta {
					delta = m.dualvar[v]
				}
			}
			deltaedge, deltablossom := -1, -1
			for v := 0; v < n; v++ {
				if m.label[m.inblossom[v]] == 0 && m.bestedge[v] != -1 {
					if d := m.slack(m.bestedge[v]); d < delta {
						delta = d
						deltatype = 2
						deltaedge = m.bestedge[v]
					}
				}
			}
			for b := 0; b < 2*n; b++ {
				if m.blossomparent[b] == -1 && m.label[b] == 1 && m.bestedge[b] != -1 {
					if d := m.slack(m.bestedge[b]) / 2; d < delta {
						delta = d
						deltatype = 3
						deltaedge = m.bestedge[b]
					}
				}
			}
			for b := n; b < 2*n; b++ {
				if m.blossombase[b] >= 0 && m.blossomparent[b] == -1 &&
					m.label[b] == 2 && m.dualvar[b] < delta {
					delta = m.dualvar[b]
					deltatype = 4
					deltablossom = b
				}
			}

			for v := 0; v < n; v++ {
				switch m.label[m.inblossom[v]] {
				case 1:
					m.dualvar[v] -= delta
				case 2:
					m.dualvar[v] += delta
				}
			}
			for b := n; b < 2*n; b++ {
				if m.blossombase[b] >= 0 && m.blossomparent[b] == -1 {
					switch m.label[b] {
					case 1:
						m.dualvar[b] += delta
					case 2:
						m.dualvar[b] -= delta
					}
				}
			}

			switch deltatype {
			case 1:
				// Dual bound reached: the matching is optimal.
				return
			case 2:
				m.allowedge[deltaedge] = true
				i := m.edges[deltaedge].i
				if m.label[m.inblossom[i]] == 0 {
					i = m.edges[deltaedge].j
				}
				m.queue = append(m.queue, i)
			case 3:
				m.allowedge[deltaedge] = true
				m.queue = append(m.queue, m.edges[deltaedge].i)
			case 4:
				m.expandBlossom(deltablossom, false)
			}
		}

		if !augmented {
			return
		}

		// End of stage: dissolve S-blossoms whose dual dropped to zero.
		for b := n; b < 2*n; b++ {
			if m.blossomparent[b] == -1 && m.blossombase[b] >= 0 &&
				m.label[b] == 1 && m.dualvar[b] == 0 {
				m.expandBlossom(b, true)
			}
		}
	}
}

// at indexes a slice with Python-style negative wrap-around, which the
// blossom cycle walks rely on.
func at(s []int, idx int) int {
	if idx < 0 {
		idx += len(s)
	}

	return s[idx]
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

func reverseInts(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// rotate returns s rotated left by i (new slice).
func rotate(s []int, i int) []int {
	out := make([]int, 0, len(s))
	out = append(out, s[i:]...)
	out = append(out, s[:i]...)

	return out
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

func iota2(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}
