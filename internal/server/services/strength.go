package services

import "unicode"

// CalcStrength scores a password 0..100 with an additive heuristic: points
// for length and each character class, a bonus at 12+ characters and a
// penalty under 8. The score is advisory display metadata, not a policy.
func CalcStrength(password string) int {
	if password == "" {
		return 0
	}

	score := 0

	n := len([]rune(password))
	if l := n * 2; l < 25 {
		score += l
	} else {
		score += 25
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	if lower {
		score += 15
	}
	if upper {
		score += 15
	}
	if digit {
		score += 15
	}
	if symbol {
		score += 20
	}

	if n >= 12 {
		score += 10
	}
	if n < 8 {
		score -= 20
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score
}
