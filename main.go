package main

import "github.com/ggmaddr/watersort/cmd"

func main() {
	cmd.Execute()
}
