package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/nedex"
	"github.com/npillmayer/nedex/expr"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("B.REPL"), where users grow an
// expression tree step by step. Commands are single keywords with at most
// one argument; there is no expression syntax and no parsing involved.
// B.REPL is intended as a sandbox for experiments during the early phase of
// rewriting-engine development, with a focus on out-of-order construction.
//
// Please refer to packages "expr" and "pattern".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to B.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("brepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		root: expr.Hole(),
		repl: repl,
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// Intp is our interpreter object. It holds the builder under construction
// and the cursor path: a list of child indices leading from the root to the
// position commands operate on. Lenses are strictly downward and transient,
// therefore every command re-derives its Lens from the root by walking the
// path.
type Intp struct {
	root *expr.Builder
	path []int
	repl *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Execute(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single command line. Commands are a keyword plus at most
// one argument.
func (intp *Intp) Execute(line string) (bool, error) {
	args := strings.Fields(line)
	cmd, arg := args[0], ""
	if len(args) > 1 {
		arg = args[1]
	}
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.help()
		return false, nil
	case "show":
		intp.show()
		return false, nil
	case "root":
		intp.path = nil
		intp.show()
		return false, nil
	case "reset":
		intp.root = expr.Hole()
		intp.path = nil
		intp.show()
		return false, nil
	case "cd":
		index, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("cd expects a child index, got '%s'", arg)
		}
		if _, err := nodeAt(intp.root, append(intp.path, index)); err != nil {
			return false, err
		}
		intp.path = append(intp.path, index)
		intp.show()
		return false, nil
	case "can":
		if intp.root.CanFinish() {
			pterm.Info.Println("no holes left, finish will succeed")
		} else {
			pterm.Info.Println("unfilled holes remain")
		}
		return false, nil
	case "finish":
		e, err := intp.root.Finish()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(e.String())
		intp.root = expr.FromExpr(e) // keep the tree around for further edits
		intp.path = nil
		return false, nil
	}
	// the remaining commands mutate the node at the cursor
	node, err := nodeAt(intp.root, intp.path)
	if err != nil {
		return false, err
	}
	switch cmd {
	case "fill":
		if arg == "" {
			return false, fmt.Errorf("fill expects a token")
		}
		if node.Type() != expr.HoleType {
			return false, fmt.Errorf("position is not a hole (%s)", node.Type())
		}
		node.Lens().FillToken(nedex.T(arg))
	case "push":
		if arg == "" {
			return false, fmt.Errorf("push expects a token")
		}
		if node.Type() == expr.HoleType {
			return false, fmt.Errorf("cannot add a child to a hole; fill it first")
		}
		node.PushToken(nedex.T(arg))
	case "hole":
		if node.Type() == expr.HoleType {
			return false, fmt.Errorf("cannot add a child to a hole; fill it first")
		}
		node.PushChild(expr.Hole())
	case "take":
		head, ok := node.TakeHead()
		if !ok {
			return false, fmt.Errorf("position has no head token")
		}
		pterm.Info.Println("took head " + head.Lexeme())
	case "head":
		if arg == "" {
			return false, fmt.Errorf("head expects a token")
		}
		if node.Type() == expr.HoleType {
			return false, fmt.Errorf("cannot set a head on a bare hole; fill it instead")
		}
		if prev, ok := node.SetHead(nedex.T(arg)); ok {
			pterm.Info.Println("replaced head " + prev.Lexeme())
		}
	default:
		return false, fmt.Errorf("unknown command '%s'; try help", cmd)
	}
	intp.show()
	return false, nil
}

func (intp *Intp) show() {
	node, err := nodeAt(intp.root, intp.path)
	if err != nil { // the cursor may have been invalidated by an edit
		intp.path = nil
		node = intp.root
	}
	pterm.Info.Println(fmt.Sprintf("%s @ %s : %s", intp.root, pathString(intp.path), node.Type()))
}

func (intp *Intp) help() {
	pterm.Info.Println(`show            print the tree ('_' is a hole) and the cursor
cd <i>          move the cursor down to child i
root            move the cursor back to the root
fill <tok>      fill the hole at the cursor with a token
push <tok>      append a token child at the cursor
hole            append a hole child at the cursor
take            remove the head token at the cursor
head <tok>      set the head token at the cursor
can             test whether the tree is complete
finish          finish the tree and print the expression
reset           start over with a bare hole
quit            leave B.REPL`)
}

// nodeAt walks down from the root along a path of child indices. Walking
// promotes wrapped expressions on the way, like any child access does.
func nodeAt(root *expr.Builder, path []int) (*expr.Builder, error) {
	node := root
	for _, index := range path {
		if node.Type() == expr.HoleType {
			return nil, fmt.Errorf("cursor runs through a hole at child %d", index)
		}
		children := node.Children()
		if index < 0 || index >= len(children) {
			return nil, fmt.Errorf("no child at index %d", index)
		}
		node = children[index]
	}
	return node, nil
}

func pathString(path []int) string {
	if len(path) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, index := range path {
		sb.WriteString("/")
		sb.WriteString(strconv.Itoa(index))
	}
	return sb.String()
}
