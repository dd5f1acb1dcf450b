// Command redgrep filters lines of its input through a derivative-based
// regular expression. A line is selected when the pattern matches it as a
// whole; wrap the pattern with .* for substring search. The pattern syntax
// includes complement (!a) and conjunction (a&b) alongside the classical
// operators.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"redgrep/regexlib"
)

type cli struct {
	Pattern string   `arg:"" help:"Regular expression, full-match semantics."`
	Files   []string `arg:"" optional:"" type:"existingfile" help:"Input files; stdin when none given."`
	Invert  bool     `short:"v" help:"Select lines that do not match."`
	Count   bool     `short:"c" help:"Print only a count of selected lines."`
	Quiet   bool     `short:"q" help:"Suppress output; exit status tells whether anything matched."`
}

func main() {
	var params cli
	kong.Parse(&params)

	re, err := regexlib.Compile(params.Pattern)
	if err != nil {
		log.Fatalf("pattern %q: %v", params.Pattern, err)
	}

	count := 0
	scan := func(r io.Reader) error {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64<<10), 1<<20)
		for scanner.Scan() {
			line := scanner.Text()
			if re.MatchString(line) == params.Invert {
				continue
			}
			count++
			if params.Quiet {
				// one hit settles the exit status
				os.Exit(0)
			}
			if !params.Count {
				fmt.Println(line)
			}
		}
		return scanner.Err()
	}

	if len(params.Files) == 0 {
		if err := scan(os.Stdin); err != nil {
			log.Fatal(err)
		}
	}
	for _, name := range params.Files {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		if err := scan(f); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		f.Close()
	}

	if params.Count {
		fmt.Println(count)
	}
	if count == 0 {
		os.Exit(1)
	}
}
