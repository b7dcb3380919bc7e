// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package distance

import "math"

// Layout names a physical keyboard arrangement used by Typo distance to
// weight substitutions/insertions by physical key proximity.
type Layout string

const (
	// QWERTY is the standard US keyboard layout.
	QWERTY Layout = "QWERTY"

	// AZERTY is the standard French keyboard layout.
	AZERTY Layout = "AZERTY"
)

type coord struct{ x, y float64 }

// keyCoords maps each layout's lowercase letters/digits to a simple 2-D
// row/column position. Row spacing approximates a real keyboard's
// horizontal stagger between rows.
var keyCoords = map[Layout]map[rune]coord{
	QWERTY: {
		'1': {0, 0}, '2': {1, 0}, '3': {2, 0}, '4': {3, 0}, '5': {4, 0},
		'6': {5, 0}, '7': {6, 0}, '8': {7, 0}, '9': {8, 0}, '0': {9, 0},
		'q': {0.5, 1}, 'w': {1.5, 1}, 'e': {2.5, 1}, 'r': {3.5, 1}, 't': {4.5, 1},
		'y': {5.5, 1}, 'u': {6.5, 1}, 'i': {7.5, 1}, 'o': {8.5, 1}, 'p': {9.5, 1},
		'a': {0.75, 2}, 's': {1.75, 2}, 'd': {2.75, 2}, 'f': {3.75, 2}, 'g': {4.75, 2},
		'h': {5.75, 2}, 'j': {6.75, 2}, 'k': {7.75, 2}, 'l': {8.75, 2},
		'z': {1.25, 3}, 'x': {2.25, 3}, 'c': {3.25, 3}, 'v': {4.25, 3}, 'b': {5.25, 3},
		'n': {6.25, 3}, 'm': {7.25, 3},
	},
	AZERTY: {
		'1': {0, 0}, '2': {1, 0}, '3': {2, 0}, '4': {3, 0}, '5': {4, 0},
		'6': {5, 0}, '7': {6, 0}, '8': {7, 0}, '9': {8, 0}, '0': {9, 0},
		'a': {0.5, 1}, 'z': {1.5, 1}, 'e': {2.5, 1}, 'r': {3.5, 1}, 't': {4.5, 1},
		'y': {5.5, 1}, 'u': {6.5, 1}, 'i': {7.5, 1}, 'o': {8.5, 1}, 'p': {9.5, 1},
		'q': {0.75, 2}, 's': {1.75, 2}, 'd': {2.75, 2}, 'f': {3.75, 2}, 'g': {4.75, 2},
		'h': {5.75, 2}, 'j': {6.75, 2}, 'k': {7.75, 2}, 'l': {8.75, 2}, 'm': {9.75, 2},
		'w': {1.25, 3}, 'x': {2.25, 3}, 'c': {3.25, 3}, 'v': {4.25, 3}, 'b': {5.25, 3},
		'n': {6.25, 3},
	},
}

// euclideanKeyDistance returns the Euclidean distance between two keys on
// layout. ok is false when either character has no known coordinate, in
// which case the caller should fall back to a flat cost rather than
// crash - the source's missing-coordinate path logs and risks a
// null-deref, which spec.md explicitly calls out to fix.
func euclideanKeyDistance(c1, c2 rune, layout Layout) (float64, bool) {
	coords := keyCoords[layout]
	p1, ok1 := coords[c1]
	p2, ok2 := coords[c2]
	if !ok1 || !ok2 {
		return 0, false
	}
	dx := p1.x - p2.x
	dy := p1.y - p2.y
	return math.Sqrt(dx*dx + dy*dy), true
}
