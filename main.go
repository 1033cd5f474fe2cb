package main

import "github.com/rohit-373/ScheduleMate/cmd"

func main() {
	cmd.Execute()
}
