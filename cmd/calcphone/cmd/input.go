package cmd

import (
	"strings"

	"github.com/go-drift/calcphone/pkg/calc"
)

// parseInput turns command-line words into events. A word that is not a
// key label but consists only of digits and points is split into one key
// per character.
func parseInput(words []string) ([]calc.Event, error) {
	var events []calc.Event
	for _, word := range words {
		for _, field := range strings.Fields(word) {
			ev, err := calc.ParseKey(field)
			if err == nil {
				events = append(events, ev)
				continue
			}
			if !isNumberWord(field) {
				return nil, err
			}
			for _, r := range field {
				ev, _ := calc.ParseKey(string(r))
				events = append(events, ev)
			}
		}
	}
	return events, nil
}

func isNumberWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
