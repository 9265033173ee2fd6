// Package console is the interactive front end: line-oriented prompting over
// an explicit reader and writer, the menu view and the controller loop.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/staybook/internal/domain"
)

const (
	invalidNumber = "Input must be a whole number."
	invalidRange  = "Input must be between %d and %d.\n"
	invalidDate   = "Input must be formatted as yyyy-MM-dd."
	dateNotAfter  = "Input must be after %s.\n"
	invalidBool   = "Input must be [y/n]."
	invalidEmail  = "Invalid email."
	invalidPhone  = "Invalid phone number format (ex. (123) 4567890)."
	invalidAmount = "Invalid amount."
)

// IO reads one line per prompt. Every Read* method returns io.EOF once the
// input is exhausted; required readers re-prompt until they get a usable value.
type IO struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewIO(in io.Reader, out io.Writer) *IO {
	return &IO{in: bufio.NewScanner(in), out: out}
}

func (c *IO) Writer() io.Writer { return c.out }

func (c *IO) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *IO) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *IO) ReadString(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *IO) ReadRequiredString(prompt string) (string, error) {
	for {
		s, err := c.ReadString(prompt)
		if err != nil || s != "" {
			return s, err
		}
	}
}

// ReadInt returns prev on blank input. Negative numbers are rejected.
func (c *IO) ReadInt(prompt string, prev int) (int, error) {
	for {
		s, err := c.ReadString(prompt)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return prev, nil
		}
		if n, ok := c.parseInt(s); ok {
			return n, nil
		}
	}
}

func (c *IO) ReadRequiredInt(prompt string, min, max int) (int, error) {
	for {
		s, err := c.ReadRequiredString(prompt)
		if err != nil {
			return 0, err
		}
		n, ok := c.parseInt(s)
		if !ok {
			continue
		}
		if n < min || n > max {
			c.Printf(invalidRange, min, max)
			continue
		}
		return n, nil
	}
}

func (c *IO) ReadBool(prompt string) (bool, error) {
	for {
		s, err := c.ReadRequiredString(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Println(invalidBool)
	}
}

// ReadDate returns prev on blank input.
func (c *IO) ReadDate(prompt string, prev time.Time) (time.Time, error) {
	for {
		s, err := c.ReadString(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if s == "" {
			return prev, nil
		}
		if d, perr := domain.ParseDate(s); perr == nil {
			return d, nil
		}
		c.Println(invalidDate)
	}
}

// ReadRequiredDate re-prompts until the date is strictly after after. A zero
// after accepts any date.
func (c *IO) ReadRequiredDate(prompt string, after time.Time) (time.Time, error) {
	for {
		s, err := c.ReadRequiredString(prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, perr := domain.ParseDate(s)
		if perr != nil {
			c.Println(invalidDate)
			continue
		}
		if !after.IsZero() && !d.After(after) {
			c.Printf(dateNotAfter, domain.FormatDate(after))
			continue
		}
		return d, nil
	}
}

func (c *IO) ReadRequiredEmail(prompt string) (string, error) {
	for {
		s, err := c.ReadRequiredString(prompt)
		if err != nil {
			return "", err
		}
		if domain.IsValidEmail(s) {
			return s, nil
		}
		c.Println(invalidEmail)
	}
}

// ReadPhone returns prev on blank input.
func (c *IO) ReadPhone(prompt, prev string) (string, error) {
	for {
		s, err := c.ReadString(prompt)
		if err != nil {
			return "", err
		}
		if s == "" {
			return prev, nil
		}
		if domain.IsValidPhone(s) {
			return s, nil
		}
		c.Println(invalidPhone)
	}
}

func (c *IO) ReadRequiredPhone(prompt string) (string, error) {
	for {
		s, err := c.ReadRequiredString(prompt)
		if err != nil {
			return "", err
		}
		if domain.IsValidPhone(s) {
			return s, nil
		}
		c.Println(invalidPhone)
	}
}

// ReadDecimal returns prev on blank input. Amounts are rounded half-even to
// two places.
func (c *IO) ReadDecimal(prompt string, prev decimal.Decimal) (decimal.Decimal, error) {
	for {
		s, err := c.ReadString(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if s == "" {
			return prev, nil
		}
		if d, perr := domain.ParseMoney(s); perr == nil {
			return d, nil
		}
		c.Println(invalidAmount)
	}
}

func (c *IO) ReadRequiredDecimal(prompt string) (decimal.Decimal, error) {
	for {
		s, err := c.ReadRequiredString(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if d, perr := domain.ParseMoney(s); perr == nil {
			return d, nil
		}
		c.Println(invalidAmount)
	}
}

func (c *IO) parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		c.Println(invalidNumber)
		return 0, false
	}
	return n, true
}
