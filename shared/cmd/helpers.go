package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "cmd")

// ConfirmAction uses the passed parameters to ask the user to confirm a
// destructive action via stdin, logging deniedText when they decline.
func ConfirmAction(actionText, deniedText string) (bool, error) {
	var confirmed bool
	reader := bufio.NewReader(os.Stdin)
	log.Warn(actionText)

	for {
		line, _, err := reader.ReadLine()
		if err != nil {
			return false, errors.Wrap(err, "could not read user input")
		}
		trimmedLine := strings.TrimSpace(string(line))

		if strings.EqualFold(trimmedLine, "y") || strings.EqualFold(trimmedLine, "yes") {
			confirmed = true
			break
		} else if strings.EqualFold(trimmedLine, "n") || strings.EqualFold(trimmedLine, "no") {
			log.Info(deniedText)
			break
		} else {
			log.Error("Invalid option of " + trimmedLine + ", please enter Y/N")
		}
	}

	return confirmed, nil
}
