package main

import (
	cmd "iconpack/cmd/iconpack"
)

func main() {
	cmd.Execute()
}
