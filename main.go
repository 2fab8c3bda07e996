package main

import (
	"os"

	"github.com/thenoetrevino/gantt/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
