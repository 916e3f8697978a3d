// Command flowerctl is the operator tool for a florarium installation.
//
// Usage:
//
//	flowerctl species [query]
//	flowerctl inspect <file.flower>
//	flowerctl verify-backup <file.bouquet>
//	flowerctl token <device-name>
//	flowerctl migrate
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
