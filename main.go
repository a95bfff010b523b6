package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"
)

const (
	factor = 30

	prompt       = "숫자를 입력하세요: "
	echoFormat   = "입력한 숫자는 %s 입니다.\n"
	resultFormat = "곱하기 30은: %s\n"
)

// ErrNoInput is returned when standard input ends before any character is read.
var ErrNoInput = errors.New("no input")

// FormatError reports input that is not a base-10 integer literal.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid literal for base 10 integer: %q", e.Input)
}

func main() {
	log.SetFlags(0)

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("inputmultiplier: %v", err)
	}
}

func run(in io.Reader, out io.Writer) error {
	input, err := readInput(in, out)
	if err != nil {
		return err
	}
	echoInput(out, input)

	n, err := parseInput(input)
	if err != nil {
		return err
	}
	printProduct(out, multiply(n, factor))
	return nil
}

func readInput(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if line == "" {
		return "", ErrNoInput
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func echoInput(out io.Writer, input string) {
	fmt.Fprintf(out, echoFormat, input)
}

// parseInput accepts an optionally signed decimal literal of any size.
// Surrounding whitespace is ignored.
func parseInput(input string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(input), 10)
	if !ok {
		return nil, &FormatError{Input: input}
	}
	return n, nil
}

func multiply(x *big.Int, y int64) *big.Int {
	return new(big.Int).Mul(x, big.NewInt(y))
}

func printProduct(out io.Writer, product *big.Int) {
	fmt.Fprintf(out, resultFormat, product.String())
}
