package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: proposalctl <submit|list> [flags]")
	}

	switch os.Args[1] {
	case "submit":
		RunSubmit(os.Args[2:])
	case "list":
		RunList(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
