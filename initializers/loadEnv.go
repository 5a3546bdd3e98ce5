package initializers

import (
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const envFile = "internal/env/.env"

// LoadEnv loads the .env file into the process environment. Variables that
// are already set win over the file. A missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{envFile}
	}

	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warnw("no .env file found, using the environment only", "files", files)
		return nil
	}

	return err
}
