package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/brettarda/brett-dev/cmd"
)

func main() {
	cmd.Execute()
}
