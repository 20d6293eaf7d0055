package main

import "github.com/veecore/leafgo/cmd/leafctl/cmd"

func main() {
	cmd.Execute()
}
