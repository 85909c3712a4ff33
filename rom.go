package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
)

/// PickROM asks the user for a program file.
///
func PickROM() (string, error) {
	file, err := dialog.File().Title("Load CHIP-8 ROM").Load()
	if err != nil {
		return "", fmt.Errorf("no ROM selected: %w", err)
	}

	return file, nil
}

/// LoadROMFile reads a program image from disk. The bytes go into
/// machine memory verbatim; there is no container format to parse.
///
func LoadROMFile(file string) ([]byte, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	return program, nil
}
