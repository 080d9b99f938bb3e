package main

import (
	"bufio"
	"fmt"
	"os"
	"petcare/shared/logger"
	"petcare/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

// Prints the bcrypt hash for ADMIN_PASSWORD_HASH. The password is read from the first
// argument, or from stdin so it stays out of shell history.
func main() {
	logger.InitLogger()

	plain := ""

	if len(os.Args) > 1 {
		plain = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal().Err(err).Msg("Failed to read password from stdin")
		}

		plain = strings.TrimRight(line, "\r\n")
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	fmt.Println(hashed) //nolint:forbidigo
}
