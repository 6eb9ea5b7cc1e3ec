// main.go
package main

import (
	"fmt"
	"os"

	"github.com/anmicius0/taskprogress/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = utils.Sync()
		os.Exit(1)
	}
	_ = utils.Sync()
}
