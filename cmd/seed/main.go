package main

import (
	"log"

	"github.com/cmlabs-hris/timesheet-backend-go/cmd/seed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %s", err)
	}
}
