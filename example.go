/*
 * a basic example for showbytes usage
 */
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bytefix/showbytes/show"
)

var (
	opt_quote = flag.String("quote", "double", "quote style (none/single/double)")
)

func main() {
	// parse flags
	flag.Parse()

	q, err := show.QuoteString(*opt_quote)
	if err != nil {
		fmt.Printf("invalid -quote value: %s\n", *opt_quote)
		os.Exit(1)
	}
	p := show.NewPrinter(q)

	// no args: render stdin
	if flag.NArg() == 0 {
		if _, err := p.Fprint(os.Stdout, show.FromReader(os.Stdin)); err != nil {
			panic(err)
		}
		fmt.Println()
		return
	}

	// render each argument on its own line
	for _, arg := range flag.Args() {
		fmt.Println(p.Sprint(show.FromString(arg)))
	}
}
