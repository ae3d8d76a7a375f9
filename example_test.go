package textline_test

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/adamluzsi/textline"
	"github.com/adamluzsi/textline/iterators"
)

func ExampleNewFromText() {
	tl := textline.NewFromText("one\rtwo\r\nthree\nfour")
	defer tl.Close()

	i, err := tl.Iterate()
	if err != nil {
		log.Fatal(err)
	}
	for i.Next() {
		fmt.Println(i.Value())
	}
	if err := i.Err(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// one
	// two
	// three
	// four
}

func ExampleNewFromFile() {
	tl := textline.NewFromFile(`testdata/names.txt`, unicode.UTF8)
	defer tl.Close()

	i, err := tl.Iterate()
	if err != nil {
		log.Fatal(err)
	}
	for i.Next() {
		fmt.Println(i.Value())
	}
	if err := i.Err(); err != nil {
		log.Fatal(err)
	}
}

func ExampleIterable_Iterate_composition() {
	tl := textline.NewFromText("1,one\n2,two\n3,three\n4,four")
	defer tl.Close()

	i, err := tl.Iterate()
	if err != nil {
		log.Fatal(err)
	}
	names := iterators.Map[string, string](i, func(line string) (string, error) {
		return strings.SplitN(line, `,`, 2)[1], nil
	})
	short := iterators.Filter[string](names, func(name string) bool {
		return len(name) <= 3
	})
	vs, err := iterators.Collect[string](short)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(vs)
	// Output: [one two]
}
