package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/trashkit/internal/logger"
)

func main() {
	if err := logger.Init(logger.OptionsFromEnv(os.Getenv)); err != nil {
		fmt.Fprintf(os.Stderr, "infotrash: logging disabled: %v\n", err)
	}
	execute()
}
