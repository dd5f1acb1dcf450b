// Command regexviz exports the DFA compiled from a pattern as Graphviz
// DOT, optionally minimised and optionally rendered straight to PNG via
// the dot tool.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/alecthomas/kong"

	"redgrep/regexlib"
)

type cli struct {
	Pattern  string `arg:"" help:"Regular expression to compile."`
	Output   string `short:"o" default:"graph.dot" help:"Output file, - for stdout."`
	PNG      bool   `help:"Render PNG via dot -Tpng instead of writing DOT."`
	Minimize bool   `help:"Minimize the DFA before export."`
	States   bool   `help:"Print the number of states and exit."`
}

func main() {
	var params cli
	kong.Parse(&params)

	re, err := regexlib.Compile(params.Pattern)
	if err != nil {
		log.Fatalf("pattern %q: %v", params.Pattern, err)
	}
	dfa := re.DFA()
	if params.Minimize {
		dfa = regexlib.Minimize(dfa)
	}

	if params.States {
		fmt.Println(dfa.NumStates())
		return
	}

	var buf bytes.Buffer
	regexlib.ExportDOT(&buf, dfa)

	if params.PNG {
		cmd := exec.Command("dot", "-Tpng", "-o", params.Output)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			log.Fatalf("dot failed: %v", err)
		}
		fmt.Printf("PNG written to %s\n", params.Output)
		return
	}

	var w io.Writer
	if params.Output == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(params.Output)
		if err != nil {
			log.Fatalf("cannot create %s: %v", params.Output, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, &buf); err != nil {
		log.Fatal(err)
	}
	if params.Output != "-" {
		fmt.Printf("DOT written to %s\n", params.Output)
	}
}
