package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const prompt = "Enter command ('help' to see all commands, 'exit' to quit)>"

var helpText = strings.Join([]string{
	"Supported Commands:",
	"1. createdir <bucket_name>",
	"2. upload <source_file_name> <bucket_name> [<dest_object_name>]",
	"3. download <dest_object_name> <bucket_name> [<source_file_name>]",
	"4. delete <dest_object_name> <bucket_name>",
	"5. deletedir <bucket_name>",
	"6. find <pattern> <bucket_name> -- e.g.: find txt bucket1 --",
	"7. listdir [<bucket_name>]",
}, "\n")

// Repl runs the read-eval-print loop until the user types "exit" or the
// input runs out. A fault re-raised by a handler is printed like any other
// response and the loop carries on; nothing short of input exhaustion stops
// the shell.
func (self *Handler) Repl(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		// Collapse whitespace runs before parsing
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		self.log.Debug("command: " + line)

		switch line {
		case "":
			continue
		case "exit":
			fmt.Fprintln(out, "Good bye!")
			return nil
		case "help":
			fmt.Fprintln(out, helpText)
		default:
			resp, err := self.Dispatch(line)
			if err != nil {
				self.log.Error(err)
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintln(out, resp)
		}
	}
}
