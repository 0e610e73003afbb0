// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package crypt

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/urfave/cli/v3"
)

// Passphrase resolves the envelope passphrase for a command. The
// --passphrase flag wins, then PLSSCTL_PASSPHRASE, then an interactive
// prompt.
func Passphrase(cmd *cli.Command) (string, error) {
	if p := cmd.String("passphrase"); p != "" {
		return p, nil
	}

	if p := os.Getenv("PLSSCTL_PASSPHRASE"); p != "" {
		return p, nil
	}

	return GetPassphrase()
}

// GetPassphrase prompts interactively for a passphrase without echoing input.
func GetPassphrase() (string, error) {
	var password []byte
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt)

	oldState, err := term.MakeRaw(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	defer term.Restore(int(syscall.Stdin), oldState) //nolint:errcheck

	fmt.Print("Enter passphrase: ")
	defer fmt.Print("\r")

loop:
	for {
		select {
		case <-signalChannel:
			fmt.Println("\nInterrupt received, exiting...")
			return "", fmt.Errorf("interrupted")
		default:
			var buf [1]byte
			n, readErr := syscall.Read(syscall.Stdin, buf[:])
			if readErr != nil || n == 0 {
				break loop
			}
			if buf[0] == '\n' || buf[0] == '\r' {
				break loop
			}
			if buf[0] == 127 || buf[0] == 8 { // Handle backspace
				if len(password) > 0 {
					password = password[:len(password)-1]
					fmt.Print("\b \b")
				}
			} else {
				password = append(password, buf[0])
				fmt.Print("*")
			}
		}
	}
	fmt.Println()
	return string(password), nil
}
