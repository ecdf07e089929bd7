package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/karlseguin/mcli/driver"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// getPassword looks for a host:port:database:user:password line in the
// password file, and asks for it when there's none.
func getPassword(preferences Preferences, config driver.Config) string {
	if password, ok := lookupPassword(preferences.PasswordFile, config.Fingerprint()); ok {
		return password
	}
	return promptPassword()
}

func lookupPassword(file string, prefix string) (string, bool) {
	if file == "" {
		return "", false
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(log.Fields{"context": "read password file", "file": file}).Error(err)
		}
		return "", false
	}

	fingerprint := []byte(prefix)
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(line, fingerprint) {
			log.WithFields(log.Fields{"line": i, "file": file}).Info("Found password")
			return string(bytes.TrimSpace(line[len(fingerprint):])), true
		}
	}
	log.WithFields(log.Fields{"prefix": prefix, "file": file}).Info("No password found")
	return "", false
}

func promptPassword() string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// stdin is the script, nobody to ask
		return ""
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.WithFields(log.Fields{"context": "read password"}).Fatal(err)
	}
	return strings.TrimSpace(string(password))
}
