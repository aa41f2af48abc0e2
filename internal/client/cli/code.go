package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blognest/blognest-cli/internal/client/authflow"
)

// codeAction is what the user chose at the 6-digit code prompt.
type codeAction int

const (
	codeSubmit codeAction = iota
	codeBack
	codeResend
)

// renderSlots draws the code buffer, marking the focused slot with
// brackets: 1 2 [3] _ _ _
func renderSlots(buf *authflow.CodeBuffer) string {
	slots := buf.Slots()
	parts := make([]string, len(slots))
	for i, s := range slots {
		if s == "" {
			s = "_"
		}
		if i == buf.Focus() {
			s = "[" + s + "]"
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// readCode drives interactive entry into the 6-digit code buffer.
//
// Accepted input per line:
//   - a single digit: typed into the focused slot
//   - several digits: pasted starting at the focused slot
//   - "b": backspace
//   - "c": clear the whole code
//   - empty line: submit (only when all 6 digits are present)
//   - "back": abandon the step
//   - "resend": request a fresh code
func readCode(reader *bufio.Reader, buf *authflow.CodeBuffer, w io.Writer) (codeAction, error) {
	for {
		fmt.Fprintf(w, "Code: %s\n> ", renderSlots(buf))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return codeBack, err
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			if buf.Complete() {
				return codeSubmit, nil
			}
			fmt.Fprintln(w, "Please enter all 6 digits")
		case "b":
			buf.Backspace()
		case "c":
			buf.Reset()
		case "back":
			return codeBack, nil
		case "resend":
			return codeResend, nil
		default:
			if len(line) == 1 {
				if !buf.Type(rune(line[0])) {
					fmt.Fprintln(w, "Digits only")
				}
				continue
			}
			if !buf.Paste(line) {
				fmt.Fprintln(w, "Digits only")
			}
		}
	}
}
