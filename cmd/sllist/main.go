package main

import (
	"os"

	"github.com/sirkon/message"

	"github.com/sirkon/sllist/internal/demo"
)

func main() {
	log := newPrinter(os.Stdout)
	demo.Run(log)

	if err := log.Err(); err != nil {
		message.Critical(err)
	}
}
