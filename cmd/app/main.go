package main

import (
	"os"

	"github.com/andreisalomia/TravelSafe/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
