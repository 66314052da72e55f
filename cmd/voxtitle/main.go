// Command voxtitle renders, previews and edits animated titles.
//
// Usage:
//   voxtitle [-config voxtitle.yaml] <command> [flags]
//
// Commands:
//   render   render one frame or a PNG sequence
//   show     render one frame inline in iTerm2
//   tui      play the build-in in the terminal
//   set      edit the parameters of a stored project
//   get      print the parameter record of a stored project
//   params   list the title parameters
//   fonts    list the fonts titles can use
package main

import "flag"
import "fmt"
import "log"
import "os"
import "sort"

import "github.com/tinne26/voxtitle/config"

type command struct {
	summary string
	run     func(env *environment, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"render": { "render one frame or a PNG sequence", runRender },
		"show":   { "render one frame inline in iTerm2", runShow },
		"tui":    { "play the build-in in the terminal", runTUI },
		"set":    { "edit the parameters of a stored project", runSet },
		"get":    { "print the parameter record of a stored project", runGet },
		"params": { "list the title parameters", runParams },
		"fonts":  { "list the fonts titles can use", runFonts },
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: voxtitle [-config file] <command> [flags]\n\nCommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands { names = append(names, name) }
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-8s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(out, "\nGlobal flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	configPath := flag.String("config", config.DefaultFileName, "configuration `file`")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	name := flag.Arg(0)
	cmd, found := commands[name]
	if !found {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil { log.Fatalf("[voxtitle] %v", err) }

	env := &environment{ config: cfg }
	err = cmd.run(env, flag.Args()[1:])
	if err != nil {
		log.Printf("[voxtitle] %s: %v", name, err)
		os.Exit(1)
	}
}
