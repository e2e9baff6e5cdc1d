package main

import (
	"github.com/joho/godotenv"

	"github.com/Tiliavir/billable-hours/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
