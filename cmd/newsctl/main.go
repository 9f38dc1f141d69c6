package main

import "github.com/news-api/cmd/newsctl/commands"

func main() {
	commands.Execute()
}
