package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/BYTE-6D65/civiltime/pkg/civil"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	// If no arguments, launch the interactive inspector
	if len(os.Args) < 2 {
		if err := startTUI(); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "parse":
		if len(os.Args) < 3 {
			log.Fatal("ERROR: parse needs a time string (try 'civil help')")
		}
		t, err := civil.Parse(os.Args[2])
		if err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		fmt.Println(civil.FormatISO(t, 0))
		return
	case "version":
		fmt.Printf("civil v%s\n", version)
		fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return
	case "help", "-h", "--help":
		usage()
		return
	default:
		log.Fatalf("ERROR: unknown command %q (try 'civil help')", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Civil - Interactive civil-time inspector

Usage:
  civil
      Launch the interactive inspector

  civil parse <value>
      Parse a time string and print it as ISO 8601 UTC

  civil version
      Show version and platform information

  civil help
      Show this help message

Examples:
  # Inspect timestamps interactively
  civil

  # Normalize a local timestamp to UTC
  civil parse "2011-11-18T15:56:35+07:00"
`)
}
