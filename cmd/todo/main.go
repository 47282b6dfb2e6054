package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/todoapp/todo-client/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cli.Fail(err)
		log.Debug().Stack().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
