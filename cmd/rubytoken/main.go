// Command rubytoken tokenizes a Ruby source snippet, printing the token
// stream or the resulting diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/env"
	"github.com/gorbylang/rubylex/lexer"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/token"
)

func main() {
	log.SetFlags(0)

	srcFile := flag.String("file", "", "path to a Ruby source file (default: read stdin)")
	dump := flag.Bool("dump", false, "pretty-print every token via repr instead of one-per-line")
	flag.Parse()

	var data []byte
	var err error
	filename := "<stdin>"
	if *srcFile != "" {
		filename = *srcFile
		data, err = os.ReadFile(*srcFile)
	} else {
		data, err = readAllStdin()
	}
	if err != nil {
		log.Fatalf("rubytoken: %v", err)
	}

	buf := source.NewBuffer(filename, data)
	scope := env.NewScope()
	diags := &diagnostic.Bag{}
	l := lexer.New(buf, scope, diags)

	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.END_OF_INPUT {
			break
		}
	}

	if *dump {
		repr.Println(toks)
	} else {
		for _, tok := range toks {
			fmt.Printf("%-20s %-12q [%d,%d)\n", tok.Kind, tok.Value, tok.Loc.Begin, tok.Loc.End)
		}
	}

	for _, d := range diags.All() {
		pos := buf.LineColForPos(d.Loc.Begin)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", filename, pos.Line, pos.Column, d.Level, d.Message.Text())
	}
	if diags.HasErrors() {
		os.Exit(1)
	}
}

func readAllStdin() ([]byte, error) {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("no -file given and stdin is a terminal")
	}
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return buf, nil
}
