package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phil-mansfield/comcot2xyz"
	"github.com/phil-mansfield/comcot2xyz/io"
)

const usage = "Nothing to do. Convert layers with -Convert <config file>, " +
	"or print a config file to start from with -ExampleConfig Convert."

type mode int

const (
	convertMode mode = iota
	exampleMode
)

type flags struct {
	convert, exampleConfig, layer, env string
}

func main() {
	fl := flags{}

	flag.StringVar(
		&fl.convert, "Convert", "",
		"Config file with a [Convert] section. Converts the layers it names.",
	)
	flag.StringVar(
		&fl.exampleConfig, "ExampleConfig", "",
		"Prints an example config file to stdout. The only accepted " +
			"argument is 'Convert'.",
	)
	flag.StringVar(
		&fl.layer, "Layer", "",
		"Converts only this layer, overriding Layer, LayerStart and " +
			"LayerEnd in the -Convert config file.",
	)
	flag.StringVar(
		&fl.env, "Env", ".env",
		"File of COMCOT_INPUT/COMCOT_OUTPUT settings loaded before the " +
			"config file is read. It is fine for this file to not exist.",
	)

	flag.Parse()

	m, err := selectMode(fl)
	if err != nil { log.Fatal(err.Error()) }

	switch m {
	case convertMode:
		if err := io.LoadEnv(fl.env); err != nil { log.Fatal(err.Error()) }

		con, err := io.ReadConvertConfig(fl.convert, fl.layer)
		if err != nil { log.Fatal(err.Error()) }

		closeLog := logToFile(&con.SharedConfig)
		ok := convertMain(con)
		closeLog()
		if !ok { os.Exit(1) }

	case exampleMode:
		fmt.Println(io.ExampleConvertFile)
	}
}

// selectMode works out what the user asked comcot2xyz to do. Exactly one of
// -Convert and -ExampleConfig must be given, and -Layer only makes sense
// alongside -Convert.
func selectMode(fl flags) (mode, error) {
	given := []string{}
	if fl.convert != "" { given = append(given, "-Convert") }
	if fl.exampleConfig != "" { given = append(given, "-ExampleConfig") }

	switch len(given) {
	case 0:
		return 0, errors.New(usage)
	case 1:
	default:
		return 0, fmt.Errorf("%s were both given, but comcot2xyz runs "+
			"one mode at a time.", strings.Join(given, " and "))
	}

	if fl.exampleConfig != "" {
		if fl.exampleConfig != "Convert" {
			return 0, fmt.Errorf("There is no example config for '%s'. "+
				"Try -ExampleConfig Convert.", fl.exampleConfig)
		}
		if fl.layer != "" {
			return 0, errors.New("-Layer can only be used with -Convert.")
		}
		return exampleMode, nil
	}

	if fl.layer != "" {
		if _, err := io.ParseLayer(fl.layer); err != nil { return 0, err }
	}
	return convertMode, nil
}

// logToFile sends the log to con.LogFile, if one was configured, and returns
// a function which closes it again.
func logToFile(con *io.SharedConfig) func() {
	if !con.ValidLogFile() { return func() { } }

	f, err := os.Create(con.LogFile)
	if err != nil { log.Fatal(err.Error()) }
	log.SetOutput(f)

	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil { log.Fatal(err.Error()) }
	}
}

// convertMain converts every layer asked for by con and returns false if
// any of them failed.
func convertMain(con *io.ConvertConfig) bool {
	rep, err := comcot2xyz.ConvertRange(con)
	if err != nil {
		log.Println(err.Error())
		return false
	}

	log.Printf("Converted %d layer(s).", len(rep.Converted))
	for _, f := range rep.Failed {
		log.Printf("Layer %s failed: %s", f.Layer, f.Err.Error())
	}
	return len(rep.Failed) == 0
}
