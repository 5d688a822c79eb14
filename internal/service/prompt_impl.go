package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// promptService is the implementation of the PromptService interface.
type promptService struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptService creates a PromptService reading from stdin.
func NewPromptService() PromptService {
	return NewPromptServiceWithStreams(os.Stdin, os.Stdout)
}

// NewPromptServiceWithStreams creates a PromptService over explicit streams.
func NewPromptServiceWithStreams(in io.Reader, out io.Writer) PromptService {
	return &promptService{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Input shows the label with the default in brackets and returns the entered
// line; an empty line selects the default.
func (s *promptService) Input(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question; an empty answer selects the default.
func (s *promptService) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(s.out, "%s [%s]: ", label, hint)
	line, err := s.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *promptService) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if err == io.EOF && line == "" {
		// Treat a closed stdin like an empty answer so non-interactive runs
		// fall through to the defaults.
		return "", nil
	}
	return strings.TrimSpace(line), nil
}
