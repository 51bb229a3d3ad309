package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// consoleInput reads answers from stdin. It satisfies interview.InputPort.
type consoleInput struct {
	reader *bufio.Reader
}

func newConsoleInput() *consoleInput {
	return &consoleInput{reader: bufio.NewReader(os.Stdin)}
}

func (c *consoleInput) ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// consoleOutput prints engine text to stdout. It satisfies interview.OutputPort.
type consoleOutput struct{}

func (consoleOutput) Display(text string) {
	fmt.Println()
	fmt.Println(text)
}
