package main

import "vault-manager/cmd"

func main() {
	cmd.Execute()
}
