package domain_test

import (
	"testing"

	"github.com/SscSPs/rating_registry/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidMoodysNotation(t *testing.T) {
	valid := []string{"Aaa", "Aa1", "Aa2", "Aa3", "A1", "A2", "A3", "Baa1", "Baa2", "Baa3",
		"Ba1", "Ba2", "Ba3", "B1", "B2", "B3", "Caa1", "Caa2", "Caa3", "Ca", "C", " Baa3 "}
	for _, s := range valid {
		assert.True(t, domain.ValidMoodysNotation(s), "expected %q to be valid", s)
	}

	invalid := []string{"AAA", "Aaa1", "Aa4", "Aa", "Baa", "Ca1", "C1", "aaa", "BBB-", "D", "A+", ""}
	for _, s := range invalid {
		assert.False(t, domain.ValidMoodysNotation(s), "expected %q to be invalid", s)
	}
}

func TestValidSPAndFitchNotation(t *testing.T) {
	valid := []string{"AAA", "AA+", "AA", "AA-", "A+", "A", "A-", "BBB+", "BBB", "BBB-",
		"BB+", "BB", "BB-", "B+", "B", "B-", "CCC+", "CCC", "CCC-", "CC", "C", "D"}
	for _, s := range valid {
		assert.True(t, domain.ValidSPNotation(s), "expected S&P %q to be valid", s)
		assert.True(t, domain.ValidFitchNotation(s), "expected Fitch %q to be valid", s)
	}

	invalid := []string{"BBB++", "AAA+", "AAA-", "CC+", "D-", "Aaa", "Baa3", "bbb", "BBBB", "A1", ""}
	for _, s := range invalid {
		assert.False(t, domain.ValidSPNotation(s), "expected S&P %q to be invalid", s)
		assert.False(t, domain.ValidFitchNotation(s), "expected Fitch %q to be invalid", s)
	}
}
