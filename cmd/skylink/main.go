package main

import (
	"gopkg.in/vansante/go-skynet.v1/internal/cli"
)

func main() {
	cli.Execute()
}
