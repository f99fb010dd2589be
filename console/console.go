// Package console runs a game in a terminal: it asks for each guess and its colors,
// prints the remaining words and asks whether the game has been won.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/powellquiring/wordlehelper/wordle"
)

type Options struct {
	Color bool // color the last guess with the game colors
}

var feedbackColors = map[wordle.Feedback]string{
	wordle.Absent:    "[white]",
	wordle.Present:   "[yellow]",
	wordle.Confirmed: "[green]",
}

// Run plays s until it terminates or in has no more lines
func Run(in io.Reader, out io.Writer, s *wordle.Session, opts Options) error {
	c := &console{
		scanner:  bufio.NewScanner(in),
		out:      out,
		session:  s,
		colorize: colorstring.Colorize{Colors: colorstring.DefaultColors, Disable: !opts.Color, Reset: true},
	}
	c.welcome()
	for !s.IsTerminated() {
		turn, ok := c.readTurn()
		if !ok {
			return c.scanner.Err()
		}
		if err := s.ApplyTurn(turn); err != nil {
			if errors.Is(err, wordle.ErrMalformedTurn) {
				c.printf("%v, enter the turn again.\n", err)
				continue
			}
			return err
		}
		c.showLastGuess(turn)
		c.showCandidates()
		if s.IsTerminated() {
			break
		}
		won, ok := c.askWon()
		if !ok {
			return c.scanner.Err()
		}
		if won {
			s.MarkSolved()
		}
	}
	if s.Solved() {
		c.printf("\nSolved in %d turns.\n", s.Turns())
	}
	return nil
}

type console struct {
	scanner  *bufio.Scanner
	out      io.Writer
	session  *wordle.Session
	colorize colorstring.Colorize
}

func (c *console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *console) welcome() {
	c.printf("\n\t\t... Initiating game ...\n\n")
	c.printf("%d words of %d letters.\n", len(c.session.Candidates()), c.session.WordLength())
	c.printf("Enter each guess followed by its colors, r=grey y=yellow g=green, like: crane rrygr\n")
	c.printf("or one color name per letter, like: crane grey grey yellow green grey\n")
}

// readTurn prompts until a well formed line is entered, ok is false at end of input
func (c *console) readTurn() (wordle.Turn, bool) {
	for {
		c.printf("\nGuess and colors: ")
		if !c.scanner.Scan() {
			return nil, false
		}
		fields := strings.Fields(c.scanner.Text())
		if len(fields) < 2 {
			c.printf("Enter the guessed word and its colors separated by a space.\n")
			continue
		}
		colors, err := colorCodes(fields[1:])
		if err != nil {
			c.printf("%v, enter the turn again.\n", err)
			continue
		}
		turn, err := wordle.ParseTurn(fields[0], colors)
		if err != nil {
			c.printf("%v, enter the turn again.\n", err)
			continue
		}
		return turn, true
	}
}

// colorCodes accepts the codes as one word, rrygr, or one color name per letter,
// grey grey yellow green grey
func colorCodes(fields []string) (string, error) {
	if len(fields) == 1 {
		return fields[0], nil
	}
	codes := make([]byte, len(fields))
	for i, name := range fields {
		f, ok := wordle.ParseFeedbackName(name)
		if !ok {
			return "", fmt.Errorf("%w: unknown color %q", wordle.ErrMalformedTurn, name)
		}
		codes[i] = f.Code()
	}
	return string(codes), nil
}

func (c *console) showLastGuess(turn wordle.Turn) {
	var sb strings.Builder
	for _, m := range turn {
		sb.WriteString(feedbackColors[m.Feedback] + strings.ToUpper(m.Letter.String()))
	}
	c.printf("\nLast guess: %s.\n", c.colorize.Color(sb.String()))
}

func (c *console) showCandidates() {
	candidates := c.session.Candidates()
	if len(candidates) == 0 {
		c.printf("\nThe dictionary is empty\n")
		return
	}
	c.printf("\nCurrent dictionary (%d):\n", len(candidates))
	for _, word := range candidates {
		c.printf("    * %s\n", word)
	}
}

func (c *console) askWon() (bool, bool) {
	for {
		c.printf("\nHave you won? (y/n) ")
		if !c.scanner.Scan() {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(c.scanner.Text())) {
		case "y", "yes":
			return true, true
		case "n", "no", "":
			return false, true
		}
	}
}
