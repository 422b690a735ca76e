package main

import "github.com/pkg/errors"

var errMissingName = errors.New("name is required for create command")

func unknownCommandError(command string) error {
	return errors.Errorf("unknown command %q", command)
}
