// Command fsmx validates machine configs and replays event sequences against
// them.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
