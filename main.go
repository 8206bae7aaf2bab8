package main

import (
	"os"

	"github.com/mernst/require-javadoc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
