package commands

import "fmt"

const usage = `blobd - container/blob storage HTTP API

Usage:
  blobd run <config.yml>     start the HTTP server
  blobd worker <config.yml>  start the integrity auditor worker
  blobd version              print the version
  blobd help                 show this help
`

func HandleHelp(_ []string) {
	fmt.Print(usage) //nolint
}
