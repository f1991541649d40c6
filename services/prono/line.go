package prono

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Prediction is one parsed best-of-seven series line: two teams and
// two scores in order of appearance, the 4 marking the winning side.
type Prediction struct {
	Teams  [2]TeamCode
	Scores [2]int
	Winner TeamCode
	Total  int
}

var (
	wordRegex  = regexp.MustCompile(`\b\w{2,}\b`)
	scoreRegex = regexp.MustCompile(`\b[0-4]\b`)
)

// ParseLine reads one line of post text as a series prediction. Digits
// wrapped in parentheses are seed annotations, not scores.
func ParseLine(line string) (Prediction, error) {
	line = strings.ToLower(line)

	var found []TeamCode
	for _, word := range wordRegex.FindAllString(line, -1) {
		code, ok := ResolveTeam(word)
		if ok && !slices.Contains(found, code) {
			found = append(found, code)
		}
	}

	var scores []int
	for _, loc := range scoreRegex.FindAllStringIndex(line, -1) {
		// re2 has no lookaround, so seed annotations like "(3)" are
		// skipped by checking the neighboring characters directly
		if loc[0] > 0 && line[loc[0]-1] == '(' {
			continue
		}
		if loc[1] < len(line) && line[loc[1]] == ')' {
			continue
		}
		n, _ := strconv.Atoi(line[loc[0]:loc[1]])
		scores = append(scores, n)
	}

	if len(found) == 0 {
		return Prediction{}, errors.New("no team found")
	}
	if len(scores) == 0 {
		return Prediction{}, errors.New("no score found")
	}
	if len(found) != 2 {
		return Prediction{}, fmt.Errorf("must have exactly two teams %v", found)
	}
	if len(scores) != 2 {
		return Prediction{}, fmt.Errorf("must have exactly two scores %v", scores)
	}
	fours := 0
	for _, s := range scores {
		if s == 4 {
			fours++
		}
	}
	if fours != 1 {
		return Prediction{}, fmt.Errorf("exactly one score must be 4 %v", scores)
	}

	winner := found[0]
	if scores[1] > scores[0] {
		winner = found[1]
	}
	return Prediction{
		Teams:  [2]TeamCode{found[0], found[1]},
		Scores: [2]int{scores[0], scores[1]},
		Winner: winner,
		Total:  scores[0] + scores[1],
	}, nil
}
