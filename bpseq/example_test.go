package bpseq_test

import (
	"fmt"

	"github.com/velhart/rnafold/bpseq"
	"github.com/velhart/rnafold/pairing"
)

// ExampleParseString reads a 9-base hairpin with two stem pairs.
func ExampleParseString() {
	doc := `1 G 9
2 C 8
3 G 0
4 A 0
5 A 0
6 A 0
7 C 0
8 G 2
9 C 1
`
	seq, ps, err := bpseq.ParseString(doc)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("seq=%s pairs=%v\n", seq, ps)
	// Output:
	// seq=GCGAAACGC pairs=[{0 8} {1 7}]
}

// ExampleEncode writes a structure back out, one line per position.
func ExampleEncode() {
	text, err := bpseq.Encode("GCAAGC", pairing.PairSet{{I: 0, J: 5}, {I: 1, J: 4}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(text)
	// Output:
	// 1 G 6
	// 2 C 5
	// 3 A 0
	// 4 A 0
	// 5 G 2
	// 6 C 1
}
