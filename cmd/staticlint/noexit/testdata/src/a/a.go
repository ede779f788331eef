package main

import (
	"log"
	"os"
)

func main() {
	defer cleanup()

	if len(os.Args) > 3 {
		os.Exit(2) // want "вызов os.Exit в функции main запрещён"
	}
	if len(os.Args) > 2 {
		log.Fatalf("too many args: %d", len(os.Args)) // want "вызов log.Fatalf в функции main запрещён"
	}

	stop := func() { os.Exit(0) }
	_ = stop

	helper()
}

func helper() {
	os.Exit(1)
}

func cleanup() {}
