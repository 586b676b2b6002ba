package corrector

import (
	"testing"

	"gopkg.in/check.v1"

	"github.com/dmitry-maltsev/spelling-corrector/symdelete"
)

// Hook gocheck into `go test` for this package too.
func Test(t *testing.T) { check.TestingT(t) }

type OracleSuite struct {
	sym    *Corrector
	linear *LinearCorrector
}

var _ = check.Suite(&OracleSuite{})

var oracleWords = []string{
	"spelling", "spell", "speller", "speed", "spelled",
	"correct", "corrected", "correction", "correctly",
	"word", "words", "wordy", "sword", "ward",
	"bicycle", "bicycles", "tricycle",
	"quintessential", "essential", "potential",
}

func (s *OracleSuite) SetUpTest(c *check.C) {
	index := symdelete.New(2, 7, symdelete.KeyExact)
	s.sym = New(index)
	s.linear = NewLinear(2)

	for i, w := range oracleWords {
		if err := s.sym.AddEntry(w, int64(100-i)); err != nil {
			c.Fatalf("sym AddEntry(%q): %v", w, err)
		}
		if err := s.linear.AddEntry(w, int64(100-i)); err != nil {
			c.Fatalf("linear AddEntry(%q): %v", w, err)
		}
	}
}

// TestOracleEquivalence checks that Corrector and LinearCorrector produce
// identical ranked output for a battery of queries, distances, topK values
// and verbosity settings — they must agree since they share rank and
// applyVerbosity, differing only in how candidates are generated.
func (s *OracleSuite) TestOracleEquivalence(c *check.C) {
	queries := []string{"speling", "korectud", "wrd", "bycycle", "quintesential", "sord", "nonexistent"}
	verbosities := []Verbosity{All, Closest, Top}

	for _, q := range queries {
		for k := 0; k <= 2; k++ {
			for _, topK := range []int{1, 3, 10} {
				for _, v := range verbosities {
					symOut, symErr := s.sym.Correct(q, k, topK, WithVerbosity(v))
					linOut, linErr := s.linear.Correct(q, k, topK, WithVerbosity(v))

					c.Assert(symErr, check.Equals, linErr, check.Commentf("q=%q k=%d topK=%d v=%d", q, k, topK, v))
					c.Assert(len(symOut), check.Equals, len(linOut), check.Commentf("q=%q k=%d topK=%d v=%d\nsym=%v\nlinear=%v", q, k, topK, v, symOut, linOut))

					for i := range symOut {
						c.Check(symOut[i], check.Equals, linOut[i], check.Commentf("q=%q k=%d topK=%d v=%d index=%d", q, k, topK, v, i))
					}
				}
			}
		}
	}
}
