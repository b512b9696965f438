package io

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	InputEnv  = "COMCOT_INPUT"
	OutputEnv = "COMCOT_OUTPUT"
)

// LoadEnv loads environment variables from the given .env files. Missing
// files are ignored, and variables which are already set are never
// overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 { files = []string{".env"} }
	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) { return err }
	}
	return nil
}

func InputDir() string { return os.Getenv(InputEnv) }

func OutputDir() string { return os.Getenv(OutputEnv) }

// FillFromEnv sets Input and Output from $COMCOT_INPUT and $COMCOT_OUTPUT
// if they weren't given in the config file.
func (con *SharedConfig) FillFromEnv() {
	if con.Input == "" { con.Input = InputDir() }
	if con.Output == "" { con.Output = OutputDir() }
}
