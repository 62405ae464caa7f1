package main

import (
	"fmt"

	"github.com/viant/ignis/analyzer"
	"github.com/viant/ignis/backend/c"
	"github.com/viant/ignis/backend/lua"
	"github.com/viant/ignis/ir"
	"github.com/viant/ignis/lexer"
	"github.com/viant/ignis/parser"
)

const source = `
import { println } from "std:io";

function greet(name: string): string {
  return "hello, " + name;
}

function main(): void {
  let mut count: int = 0;
  let names: string[] = ["ada", "grace", "margaret"];
  for (let n in names) {
    println(greet(n));
    count = count + 1;
  }
}
`

func main() {
	const path = "example.ign"

	tokens, lexDiagnostics := lexer.Scan(source, path)
	if lexDiagnostics.HasErrors() {
		fmt.Printf("lex errors: %+v\n", lexDiagnostics)
		return
	}
	fmt.Printf("scanned %d tokens\n", len(tokens))

	statements, parseDiagnostics := parser.Parse(tokens, path)
	if parseDiagnostics.HasErrors() {
		fmt.Printf("parse errors: %+v\n", parseDiagnostics)
		return
	}
	fmt.Printf("parsed %d top-level statements\n", len(statements))

	a := analyzer.New(path)
	result := a.Analyze(statements)
	if result.Diagnostics.HasErrors() {
		fmt.Printf("analysis errors: %+v\n", result.Diagnostics)
		return
	}
	fmt.Printf("analyzed forest covers %d file(s)\n", len(result.Forest))

	dump, err := ir.Dump(result.Forest)
	if err != nil {
		fmt.Printf("error dumping IR: %v\n", err)
		return
	}
	fmt.Printf("IR dump:\n%s\n", dump)

	luaTargets, err := lua.New().Emit(result.Forest)
	if err != nil {
		fmt.Printf("error emitting lua: %v\n", err)
		return
	}
	for _, target := range luaTargets {
		fmt.Printf("--- %s ---\n%s\n", target.Path, target.Source)
	}

	cTargets, err := c.New().Emit(result.Forest)
	if err != nil {
		fmt.Printf("error emitting c: %v\n", err)
		return
	}
	for _, target := range cTargets {
		fmt.Printf("--- %s ---\n%s\n", target.Path, target.Source)
	}
}
