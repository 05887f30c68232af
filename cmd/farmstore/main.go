// Command farmstore is an interactive record manager for tabular
// farm-production CSV data.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
