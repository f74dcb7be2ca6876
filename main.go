package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/cmd"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/cmd/common"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Findings were already reported; only the exit status is left to set.
		if !errors.Is(err, common.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
