package main

import (
	"os"

	"github.com/ranchfarm/ranch-farmer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
