package align_test

import (
	"fmt"

	"github.com/katalvlaran/simlath/align"
	"github.com/katalvlaran/simlath/substitution"
)

// ExampleNeedlemanWunsch compares two words with the default global aligner
// (gap −2, match 0 / mismatch −1).
//
// Two substitutions (k→s, e→i) and one insertion (g) cost 1+1+2 = 4 out of a
// worst case of 7·2 = 14, leaving a similarity of 10/14.
func ExampleNeedlemanWunsch() {
	nw, err := align.NewNeedlemanWunsch[rune]()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.0f\n", nw.Distance([]rune("kitten"), []rune("sitting")))
	fmt.Printf("similarity=%.4f\n", nw.Compare([]rune("kitten"), []rune("sitting")))
	// Output:
	// distance=4
	// similarity=0.7143
}

// ExampleSmithWaterman finds the best local match between two DNA fragments.
func ExampleSmithWaterman() {
	unit, _ := substitution.NewMatchMismatch[rune](1, -1)
	sw, err := align.NewSmithWaterman[rune](
		align.WithGap[rune](-1),
		align.WithSubstitution[rune](unit),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("score=%.0f\n", sw.Score([]rune("GATTACA"), []rune("GCATGCU")))
	fmt.Printf("similarity=%.4f\n", sw.Compare([]rune("GATTACA"), []rune("GCATGCU")))
	// Output:
	// score=2
	// similarity=0.2857
}
