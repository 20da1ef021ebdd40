package domain

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// Scoring weights for user search
	scoreExactMatch     = 100.0
	scorePrefixMatch    = 75.0
	scoreSubstringMatch = 50.0

	// Exact username match bonus (huge boost)
	scoreExactUsernameBonus = 200.0
)

// UserCandidate is a ranked user search result.
type UserCandidate struct {
	User  *User
	Score float64
}

// ParseSearchTerms splits raw user input into lowercase fragments for
// unordered matching. Empty input yields nil.
func ParseSearchTerms(input string) []string {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return nil
	}
	fields := strings.Fields(input)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = normalizeTerm(f); f != "" {
			terms = append(terms, f)
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

// normalizeTerm strips everything but letters and digits.
func normalizeTerm(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

// RankUsers scores users against the search terms and returns matches
// ordered by descending score. Users with no matching fragment are
// dropped. Ties keep source order (stable sort).
func RankUsers(terms []string, users []*User) []*UserCandidate {
	if len(terms) == 0 {
		return nil
	}

	candidates := make([]*UserCandidate, 0, len(users))
	for _, user := range users {
		score := scoreUser(terms, user)
		if score == 0.0 {
			continue
		}
		candidates = append(candidates, &UserCandidate{User: user, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

func scoreUser(terms []string, user *User) float64 {
	username := normalizeTerm(user.Username)
	nameWords := strings.Fields(strings.ToLower(user.DisplayName))

	// Single-term exact username hit dominates everything else.
	if len(terms) == 1 && terms[0] == username {
		return scoreExactMatch + scoreExactUsernameBonus
	}

	var total float64
	for _, term := range terms {
		best := scoreFragment(term, username)
		for _, word := range nameWords {
			if s := scoreFragment(term, normalizeTerm(word)); s > best {
				best = s
			}
		}
		total += best
	}
	return total
}

func scoreFragment(term, target string) float64 {
	if term == "" || target == "" {
		return 0.0
	}
	switch {
	case term == target:
		return scoreExactMatch
	case strings.HasPrefix(target, term):
		return scorePrefixMatch
	case strings.Contains(target, term):
		return scoreSubstringMatch
	}
	return 0.0
}
