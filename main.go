package main

import (
	"github.com/maxsid/memberful-login/cmd"
)

func main() {
	cmd.Execute()
}
