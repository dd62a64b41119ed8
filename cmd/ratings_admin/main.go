package main

import "github.com/SscSPs/rating_registry/cmd/ratings_admin/command"

func main() {
	command.Execute()
}
