package main

import (
	"github.com/postbox-tui/postbox/cmd"
)

func main() {
	cmd.Execute()
}
