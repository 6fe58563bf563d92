package main

import "clinical-trial-system/cmd"

func main() {
	cmd.Execute()
}
