package main

import "flag"
import "fmt"
import "io"
import "os"
import "text/tabwriter"

import "github.com/tinne26/voxtitle/font"

func runFonts(env *environment, args []string) error {
	flags := flag.NewFlagSet("fonts", flag.ContinueOnError)
	err := flags.Parse(args)
	if err != nil { return err }

	lib, err := env.fontLibrary()
	if err != nil { return err }
	return listFonts(os.Stdout, lib)
}

// Writes the full name of every font in the library, marking the
// one unknown names fall back to.
func listFonts(out io.Writer, lib *font.Library) error {
	_, fallbackName := font.Fallback()
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "FONT\tNOTE")
	for _, name := range lib.Names() {
		note := "-"
		if name == fallbackName { note = "fallback" }
		fmt.Fprintf(writer, "%s\t%s\n", name, note)
	}
	return writer.Flush()
}
