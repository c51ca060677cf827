package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/agenthands/rustlex/pkg/lexer"
)

func main() {
	src := flag.String("src", "", "lex this string instead of reading a file")
	match := flag.String("match", "", "only print lexemes whose text fuzzy-matches this pattern")
	dump := flag.Bool("dump", false, "dump raw lexeme records instead of the table")
	flag.Parse()

	text := *src
	if text == "" {
		if flag.NArg() < 1 {
			fmt.Println("Usage: rustlex [-match pattern] [-dump] <source.rs>")
			fmt.Println("       rustlex [-match pattern] [-dump] -src 'let x = 1;'")
			os.Exit(1)
		}
		raw, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}
		text = string(raw)
	}

	lexemes, err := lexer.Lexemize(text, lexer.Edition2018)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *match != "" {
		filtered := lexemes[:0:0]
		for _, lx := range lexemes {
			if fuzzy.MatchFold(*match, lx.Text) {
				filtered = append(filtered, lx)
			}
		}
		lexemes = filtered
	}

	if *dump {
		spew.Dump(lexemes)
		return
	}
	fmt.Print(lexer.Render(lexemes))
}
