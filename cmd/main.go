package main

import "pomodoro/internal/cli"

func main() {
	cli.Execute()
}
