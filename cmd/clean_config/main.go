package main

import (
	"fmt"
	"os"

	"github.com/phravins/kivagen/internal/config"
)

func main() {
	if _, err := config.LoadConfig(); err != nil {
		fmt.Printf("Error reading config: %v\n", err)
		os.Exit(1)
	}

	if err := config.SaveConfig(config.KeyTemplateDir, ""); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Successfully cleared template_dir in .kivagen.yaml")
}
