package main

import (
	"io"
	"strings"

	"github.com/ergochat/readline"
	"github.com/google/uuid"

	"github.com/nickdbush/cset/history"
	"github.com/nickdbush/cset/schema"
	"github.com/nickdbush/cset/utils"
)

// REPL per se.
type REPL struct {
	reg   *schema.Registry
	hist  *history.History
	names map[string]uuid.UUID
	rl    *readline.Instance
	log   utils.Logger
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),

	readline.PcItem("class"),
	readline.PcItem("new"),

	readline.PcItem("get"),
	readline.PcItem("set"),
	readline.PcItem("show"),
	readline.PcItem("ls"),

	readline.PcItem("undo"),
	readline.PcItem("redo"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewREPL(log utils.Logger) *REPL {
	return &REPL{
		reg:   schema.NewRegistry(log),
		hist:  history.New(log),
		names: make(map[string]uuid.UUID),
		log:   log,
	}
}

func (repl *REPL) Open() (err error) {
	repl.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "◌ ",
		HistoryFile:     ".cset_cmd_log.txt",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return
	}
	repl.rl.CaptureExitSignal()
	return
}

func (repl *REPL) Close() error {
	if repl.rl != nil {
		_ = repl.rl.Close()
		repl.rl = nil
	}
	return nil
}

func (repl *REPL) REPL() (err error) {
	var line string
	line, err = repl.rl.Readline()
	if err == readline.ErrInterrupt && len(line) != 0 {
		return nil
	}
	if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}
	args := strings.Fields(line)
	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "help":
		err = repl.CommandHelp(args)
	// ----- schemas and records -----
	case "class":
		err = repl.CommandClass(args)
	case "new":
		err = repl.CommandNew(args)
	case "get":
		err = repl.CommandGet(args)
	case "set":
		err = repl.CommandSet(args)
	case "show", "cat":
		err = repl.CommandShow(args)
	case "ls", "list":
		err = repl.CommandList(args)
	// ----- history -----
	case "undo":
		err = repl.CommandUndo(args)
	case "redo":
		err = repl.CommandRedo(args)
	case "exit", "quit":
		err = io.EOF
	default:
		err = ErrBadCommand
	}
	return
}
