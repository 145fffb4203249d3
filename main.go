package main

import "github.com/dzjyyds666/tomlconf/cmd/tomlctl"

func main() {
	tomlctl.Execute()
}
