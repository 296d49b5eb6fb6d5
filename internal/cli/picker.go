package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dropnote/dropnote/internal/catalog"
)

// pickTerminal shows the installed terminals and reads a single-key choice.
func pickTerminal(installed []catalog.Descriptor) (catalog.Descriptor, error) {
	fmt.Println("Installed terminals:")
	for i, d := range installed {
		fmt.Printf("  [%d] %s\n", i+1, d.DisplayName)
	}
	fmt.Print("Choice: ")

	choice, err := readSingleChar()
	if err != nil {
		// Not a terminal (or empty input): fall back to line input.
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return catalog.Descriptor{}, fmt.Errorf("no selection")
		}
		choice = strings.TrimSpace(scanner.Text())
	}
	fmt.Println()

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(installed) {
		return catalog.Descriptor{}, fmt.Errorf("invalid selection %q", choice)
	}
	return installed[n-1], nil
}

// readSingleChar reads one character from stdin without waiting for Enter.
func readSingleChar() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	var buf [1]byte
	n, err := os.Stdin.Read(buf[:])
	if err != nil || n == 0 {
		return "", fmt.Errorf("failed to read input")
	}

	char := string(buf[0])
	if char == "\n" || char == "\r" {
		return "", fmt.Errorf("empty input")
	}
	return char, nil
}
