package commands

import (
	"os"

	"blobd/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("blobd error", "err", err.Error())
	os.Exit(1)
}
