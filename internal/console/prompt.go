package console

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/diewo77/seedmart/internal/validation"
	"golang.org/x/term"
)

// TerminalPassword returns a no-echo password reader for f, or nil when f
// is not a terminal.
func TerminalPassword(f *os.File) func() (string, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func() (string, error) {
		b, err := term.ReadPassword(fd)
		return string(b), err
	}
}

// readLine prints the translated prompt and reads one line. The last line
// of the input may lack a newline; io.EOF is returned only when nothing
// was read.
func (c *Console) readLine(promptCode string) (string, error) {
	c.out.Printf("%s: ", c.out.T(promptCode))
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) readSecret(promptCode string) (string, error) {
	if c.ReadPassword == nil {
		return c.readLine(promptCode)
	}
	c.out.Printf("%s: ", c.out.T(promptCode))
	s, err := c.ReadPassword()
	c.out.Println()
	if err != nil {
		return "", io.EOF
	}
	return s, nil
}

// promptText re-prompts until a non-blank value is entered.
func (c *Console) promptText(promptCode, field string) (string, error) {
	for {
		s, err := c.readLine(promptCode)
		if err != nil {
			return "", err
		}
		v := validation.Violations{}
		validation.Required(field, s, v)
		if v.Empty() {
			return strings.TrimSpace(s), nil
		}
		c.reportError(v)
	}
}

// promptOptionalText returns nil for an empty answer.
func (c *Console) promptOptionalText(promptCode string) (*string, error) {
	s, err := c.readLine(promptCode)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// promptEmail re-prompts until the answer is empty or a valid address.
func (c *Console) promptEmail(promptCode string) (*string, error) {
	for {
		s, err := c.promptOptionalText(promptCode)
		if err != nil || s == nil {
			return s, err
		}
		v := validation.Violations{}
		validation.Email("email", *s, v)
		if v.Empty() {
			return s, nil
		}
		c.reportError(v)
	}
}

// promptInt re-prompts until an integer within [minVal, maxVal] is entered.
func (c *Console) promptInt(promptCode string, minVal, maxVal int) (int, error) {
	for {
		n, err := c.promptOptionalInt(promptCode, minVal, maxVal)
		if err != nil {
			return 0, err
		}
		if n != nil {
			return *n, nil
		}
		c.out.Println(c.out.T("required"))
	}
}

// promptOptionalInt re-prompts on malformed or out-of-range input and
// returns nil for an empty answer.
func (c *Console) promptOptionalInt(promptCode string, minVal, maxVal int) (*int, error) {
	for {
		s, err := c.readLine(promptCode)
		if err != nil {
			return nil, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			c.out.Println(c.out.T("invalid_number"))
			continue
		}
		if n < minVal || n > maxVal {
			c.out.Println(c.out.T("out_of_range"))
			continue
		}
		return &n, nil
	}
}

// promptOptionalFloat is promptOptionalInt for decimal input such as a
// discount percentage. A decimal comma is accepted.
func (c *Console) promptOptionalFloat(promptCode string, minVal, maxVal float64) (*float64, error) {
	for {
		s, err := c.readLine(promptCode)
		if err != nil {
			return nil, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			c.out.Println(c.out.T("invalid_number"))
			continue
		}
		v := validation.Violations{}
		validation.RangeFloat("value", f, minVal, maxVal, v)
		if !v.Empty() {
			c.out.Println(c.out.T("out_of_range"))
			continue
		}
		return &f, nil
	}
}

// confirm asks a yes/no question until it gets an answer.
func (c *Console) confirm(promptCode string) (bool, error) {
	for {
		s, err := c.readLine(promptCode)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "y", "ya", "yes":
			return true, nil
		case "n", "t", "tidak", "no":
			return false, nil
		}
		c.out.Println(c.out.T("answer_yes_no"))
	}
}

const maxInput = 1<<31 - 1
