package main

import "errors"
import "flag"
import "fmt"
import "log"
import "os"
import "text/tabwriter"

import "github.com/tinne26/voxtitle"
import "github.com/tinne26/voxtitle/host"

func runSet(env *environment, args []string) error {
	flags := flag.NewFlagSet("set", flag.ContinueOnError)
	project := flags.String("project", "", "stored project `name` (required)")
	err := flags.Parse(args)
	if err != nil { return err }
	if *project == "" { return errors.New("-project is required") }
	if flags.NArg() == 0 { return errors.New("expected at least one key=value argument") }

	var changes assignments
	for _, arg := range flags.Args() {
		err := changes.Set(arg)
		if err != nil { return err }
	}

	st, err := env.openStore()
	if err != nil { return err }
	params, err := st.LoadParameters(*project)
	if err != nil { return err }
	params, err = changes.apply(params, 0)
	if err != nil { return err }

	_, state, err := host.Snapshot(host.MapRetrieverFrom(params), 0)
	if err != nil { return err }
	err = st.Save(*project, state)
	if err != nil { return err }
	log.Printf("[voxtitle] project %q updated (%d changes)", *project, len(changes))
	return nil
}

func runGet(env *environment, args []string) error {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	project := flags.String("project", "", "stored project `name`; lists projects when empty")
	err := flags.Parse(args)
	if err != nil { return err }

	st, err := env.openStore()
	if err != nil { return err }
	if *project == "" {
		names, err := st.Projects()
		if err != nil { return err }
		for _, name := range names { fmt.Println(name) }
		return nil
	}

	params, err := st.LoadParameters(*project)
	if err != nil { return err }
	state, err := params.Encode()
	if err != nil { return err }
	_, err = os.Stdout.Write(state)
	return err
}

func runParams(env *environment, args []string) error {
	flags := flag.NewFlagSet("params", flag.ContinueOnError)
	err := flags.Parse(args)
	if err != nil { return err }

	var recorder host.Recorder
	err = host.Register(&recorder)
	if err != nil { return err }

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tKEY\tNAME\tKIND\tDEFAULT\tRANGE")
	for _, entry := range recorder.Entries {
		spec, _ := voxtitle.SpecByID(entry.ID)
		limits := "-"
		if entry.Kind == voxtitle.KindFloat {
			rng := entry.Range
			limits = fmt.Sprintf("%g..%g (slider %g..%g, step %g)", rng.Min, rng.Max, rng.SliderMin, rng.SliderMax, rng.Step)
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
			entry.ID, spec.Key, entry.Name, entry.Kind, spec.Format(entry.Default), limits)
	}
	return writer.Flush()
}
