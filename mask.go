package qrmatrix

import "math"

const (
	penaltyWeight1 = 3
	penaltyWeight2 = 3
	penaltyWeight4 = 10
)

// maskBit evaluates mask pattern at row i, column j.
func maskBit(pattern, i, j int) bool {
	switch pattern {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return (i*j)%2+(i*j)%3 == 0
	case 6:
		return ((i*j)%2+(i*j)%3)%2 == 0
	case 7:
		return ((i*j)%3+(i+j)%2)%2 == 0
	default:
		panic("Invalid maskPattern")
	}
}

// penaltyScore rates how hard the symbol is to scan, lower is better.
// The 1:1:3:1:1 finder look-alike rule is not scored.
func (s *symbol) penaltyScore() float64 {
	return float64(s.penalty1()+s.penalty2()) + s.penalty4()
}

// penalty1 charges modules with more than five same colored neighbours.
func (s *symbol) penalty1() int {
	penalty := 0

	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			sameCount := 0
			v := s.isDark(row, col)

			for r := -1; r <= 1; r++ {
				for c := -1; c <= 1; c++ {
					if (r == 0 && c == 0) || !s.inside(row+r, col+c) {
						continue
					}
					if v == s.isDark(row+r, col+c) {
						sameCount++
					}
				}
			}

			if sameCount > 5 {
				penalty += penaltyWeight1 + sameCount - 5
			}
		}
	}

	return penalty
}

// penalty2 charges every uniform 2x2 block.
func (s *symbol) penalty2() int {
	penalty := 0

	for row := 0; row < s.size-1; row++ {
		for col := 0; col < s.size-1; col++ {
			count := 0
			for _, v := range []bool{
				s.isDark(row, col), s.isDark(row+1, col),
				s.isDark(row, col+1), s.isDark(row+1, col+1),
			} {
				if v {
					count++
				}
			}
			if count == 0 || count == 4 {
				penalty++
			}
		}
	}

	return penalty * penaltyWeight2
}

// penalty4 charges the deviation of the dark module ratio from 50%.
func (s *symbol) penalty4() float64 {
	numDarkModules := 0
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			if s.isDark(row, col) {
				numDarkModules++
			}
		}
	}

	ratio := math.Abs(100*float64(numDarkModules)/float64(s.size)/float64(s.size)-50) / 5
	return ratio * penaltyWeight4
}
