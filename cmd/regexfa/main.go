// Command regexfa compiles regular expressions into NFAs, DFAs, and
// minimal DFAs, prints a summary of each, renders BFS-wave images of
// every automaton, and optionally simulates a string against them.
//
// Grounded on DanielRasho-CT-Project-1/cmd/auxiliar/functions.go's two
// top-level modes, InteractiveRegexSimulation (a REPL) and
// ProcessRegexFromFile (batch, one regex per line), and its
// PrintNFA/PrintDFA summary style.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/pflag"

	"github.com/rgonzalez/regexfa"
	"github.com/rgonzalez/regexfa/internal/dfa"
	"github.com/rgonzalez/regexfa/internal/nfa"
)

func main() {
	var (
		file     = pflag.StringP("file", "f", "", "batch-process one regex per line from this file instead of starting a REPL")
		outDir   = pflag.StringP("out", "o", "graphs", "directory to render automaton images into")
		simulate = pflag.StringP("simulate", "s", "", "string to test for membership against every compiled automaton in batch mode (the REPL prompts for one instead)")
		noRender = pflag.Bool("no-render", false, "skip image rendering entirely")
		showHelp = pflag.BoolP("help", "h", false, "print usage and exit")
	)
	pflag.Parse()

	if *showHelp {
		pflag.Usage()
		return
	}

	if *file != "" {
		if err := processFile(*file, *outDir, *simulate, *noRender); err != nil {
			gologger.Fatal().Msgf("batch processing failed: %v", err)
		}
		return
	}

	interactive(*outDir, *noRender)
}

func processFile(path, outDir, probe string, noRender bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	index := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		gologger.Info().Msgf("[%d] regex: %s", index, line)
		compileAndReport(line, outDir, probe, noRender, index)
		index++
	}
	return scanner.Err()
}

func interactive(outDir string, noRender bool) {
	reader := bufio.NewReader(os.Stdin)
	step := 0
	for {
		fmt.Print("\nenter a regular expression (or 'quit' to exit): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "quit" || line == "0" {
			return
		}
		if line == "" {
			continue
		}

		fmt.Print("enter a string to test against it (blank to skip): ")
		probeLine, _ := reader.ReadString('\n')
		probe := strings.TrimSpace(probeLine)

		compileAndReport(line, outDir, probe, noRender, step)
		step++
	}
}

func compileAndReport(regex, outDir, probe string, noRender bool, index int) {
	postfix, err := regexfa.RegexToPostfix(regex)
	if err != nil {
		gologger.Error().Msgf("%s: %v", regex, err)
		return
	}
	fmt.Printf("postfix: %s\n", postfix)

	n, err := nfa.Build(postfix)
	if err != nil {
		gologger.Error().Msgf("%s: %v", regex, err)
		return
	}
	n.Normalize()
	printNFA(n)

	d := dfa.FromNFA(n)
	printDFA(d)

	m := regexfa.MinimizeDFA(d)
	fmt.Println("minimal DFA:")
	printDFA(m)

	if probe != "" {
		fmt.Printf("NFA accepts %q: %v\n", probe, regexfa.SimulateNFA(n, probe))
		fmt.Printf("DFA accepts %q: %v\n", probe, regexfa.SimulateDFA(d, probe))
		fmt.Printf("minimal DFA accepts %q: %v\n", probe, regexfa.SimulateDFA(m, probe))
	}

	if noRender {
		return
	}

	for _, a := range []regexfa.Automaton{n, d, m} {
		dir := fmt.Sprintf("%s/%s_%d", outDir, a.TypeName(), index)
		images, err := regexfa.Draw(a, dir)
		if err != nil {
			gologger.Warning().Msgf("rendering %s for %q failed: %v", a.TypeName(), regex, err)
			continue
		}
		gologger.Info().Msgf("rendered %d image(s) into %s", len(images), dir)
	}
}

func printNFA(n *nfa.NFA) {
	fmt.Println("NFA:")
	fmt.Printf("  start: %s\n", n.DisplayName(n.StartHandle()))
	for h := range n.Final {
		fmt.Printf("  final: %s\n", n.DisplayName(h))
	}
	for h := range n.States {
		for _, e := range n.OutEdges(h) {
			fmt.Printf("  %s -> %s on %s\n", n.DisplayName(h), n.DisplayName(e.Target), e.Symbol)
		}
	}
}

func printDFA(d *dfa.DFA) {
	fmt.Printf("start: %s\n", d.DisplayName(d.StartHandle()))
	for h := range d.Final {
		fmt.Printf("final: %s\n", d.DisplayName(h))
	}
	for h := range d.States {
		for _, e := range d.OutEdges(h) {
			fmt.Printf("  %s -> %s on %s\n", d.DisplayName(h), d.DisplayName(e.Target), e.Symbol)
		}
	}
}
