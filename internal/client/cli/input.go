package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/apetrenko/contentgen/internal/common"
)

// Seam for tests: reading a password from the terminal needs a real fd.
var readPasswordFn = func() (string, error) {
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	password := string(data)
	common.WipeByteArray(data)
	return password, err
}

func (a *App) readLine(prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	return readPasswordFn()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (a *App) readID(prompt string) (int64, bool) {
	text := a.readLine(prompt)
	if text == "" {
		return 0, false
	}
	id, err := parseID(text)
	if err != nil {
		a.errLine = "invalid id"
		return 0, false
	}
	return id, true
}

func (a *App) confirm(prompt string) bool {
	return strings.EqualFold(a.readLine(prompt+" [y/N]: "), "y")
}
