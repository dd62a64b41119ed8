package domain

import (
	"regexp"
	"strings"
)

var (
	moodysPattern = regexp.MustCompile(`^(Aaa|(Aa|A|Baa|Ba|B|Caa)[123]|Ca|C)$`)
	// S&P and Fitch share one long-term scale.
	spFitchPattern = regexp.MustCompile(`^(AAA|(AA|A|BBB|BB|B|CCC)[+-]?|CC|C|D)$`)
)

// ValidMoodysNotation reports whether s is a Moody's long-term notation.
// Surrounding whitespace is ignored; case is not.
func ValidMoodysNotation(s string) bool {
	return moodysPattern.MatchString(strings.TrimSpace(s))
}

// ValidSPNotation reports whether s is an S&P long-term notation.
func ValidSPNotation(s string) bool {
	return spFitchPattern.MatchString(strings.TrimSpace(s))
}

// ValidFitchNotation reports whether s is a Fitch long-term notation.
func ValidFitchNotation(s string) bool {
	return spFitchPattern.MatchString(strings.TrimSpace(s))
}
