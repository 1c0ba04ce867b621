package main

import (
	"oficina/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
