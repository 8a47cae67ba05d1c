package main

import "github.com/Manu343726/spimgo/cmd"

func main() {
	cmd.Execute()
}
