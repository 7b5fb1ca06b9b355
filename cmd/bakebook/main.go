// Package main provides the bakebook CLI, a single-user record manager
// for a small bakery: clients, pastries and the orders that link them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
