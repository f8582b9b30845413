// SPDX-License-Identifier: MIT

package ga

import "fmt"

// crossoverChild builds one ordered-crossover (OX) offspring.
//
// The child takes p1's values verbatim on positions [b,e). Every other
// position, scanned left to right, takes the next value of p2 (in p2's own
// order) that does not already occur in p1[b:e). The result is a permutation
// whenever both parents are.
//
// Example (b=2, e=5):
//
//	p1    = [0 1 | 2 3 4 | 5 6]
//	p2    = [6 4 5 3 1 0 2]
//	child = [6 5 | 2 3 4 | 1 0]
//
// Panics if 0 ≤ b ≤ e ≤ N does not hold, or if p2 runs out of eligible values
// before the child is full (only possible when a parent is corrupted).
//
// Complexity: O(N) time, O(N) space.
func crossoverChild(p1, p2 Chromosome, b, e int) Chromosome {
	var n = len(p1.order)
	if b < 0 || e < b || e > n {
		panic(fmt.Sprintf("ga: crossover window [%d,%d) outside [0,%d]", b, e, n))
	}

	// Mark the cities fixed by p1's window.
	fixed := make([]bool, n)
	for _, v := range p1.order[b:e] {
		fixed[v] = true
	}

	var (
		order = make([]int, n)
		i     int // child position
		j     int // cursor into p2
	)
	for i = 0; i < n; i++ {
		if i >= b && i < e {
			order[i] = p1.order[i]
			continue
		}
		for j < n && fixed[p2.order[j]] {
			j++
		}
		if j >= n {
			panic(fmt.Sprintf("ga: crossover donor %v exhausted at position %d", p2.order, i))
		}
		order[i] = p2.order[j]
		j++
	}

	child := Chromosome{cities: p1.cities, order: order}
	child.evaluate()
	child.assertValid("crossover")

	return child
}
