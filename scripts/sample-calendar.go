package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/library-events/internal/calendar"
	"github.com/pfrederiksen/library-events/internal/store"
)

func main() {
	// Export the fresh-install sample events
	icsContent := calendar.Generate(store.SeedEvents(), store.SeedLibraries(), "Library Events (sample)")

	// Write to file (owner read/write only)
	filename := "sample-library-events.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
