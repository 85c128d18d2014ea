package main

import "github.com/capital-devs/community/add-meetup/internal/commands"

func main() {
	commands.Execute()
}
