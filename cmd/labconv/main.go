package main

import (
	"fmt"
	"os"
)

func main() {
	if err := new_root_command().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
