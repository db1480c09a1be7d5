package main

import "github.com/theirongolddev/cnchist/cmd"

func main() {
	cmd.Execute()
}
