package main

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
