package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	hashtable "github.com/gadilabi/hash-table"
)

var errQuit = errors.New("quit")

const helpText = `set <key> <value>   insert or update a key
get <key>           look up a key
del <key>           delete a key
keys                list keys in slot order
stats               show count, capacity and probe statistics
slots               draw the slot occupancy map
help                show this text
quit                exit
Keys containing spaces can be quoted: set "key 1" one`

// shell executes commands against a single table of string values.
type shell struct {
	table    *hashtable.Table[string]
	released int
}

func newShell(capacity int, opts ...hashtable.Option) (*shell, error) {
	t, err := hashtable.New[string](capacity, opts...)
	if err != nil {
		return nil, err
	}
	s := &shell{table: t}
	t.SetDestructor(func(string) { s.released++ })
	return s, nil
}

func (s *shell) close() {
	s.table.Destroy()
}

// exec runs one command line and returns its printable result.
func (s *shell) exec(line string) (string, error) {
	args, err := splitArgs(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "set", "put", "insert":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: set <key> <value>")
		}
		outcome, err := s.table.Insert(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return "", err
		}
		return outcome.String(), nil

	case "get":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: get <key>")
		}
		v, found := s.table.Get(args[0])
		if !found {
			return "(absent)", nil
		}
		return v, nil

	case "del", "delete", "rm":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: del <key>")
		}
		if err := s.table.Delete(args[0]); err != nil {
			return "", err
		}
		return "ok", nil

	case "keys":
		keys := s.table.Keys()
		if len(keys) == 0 {
			return "(empty)", nil
		}
		return strings.Join(keys, "\n"), nil

	case "stats":
		st := s.table.Stats()
		return fmt.Sprintf("count=%d capacity=%d load=%.3f resizes=%d longest_probe=%d released=%d",
			st.Count, st.Capacity, s.table.LoadFactor(), st.Resizes, st.LongestProbe, s.released), nil

	case "slots":
		return renderSlots(s.table.Layout()), nil

	case "help", "?":
		return helpText, nil

	case "quit", "exit":
		return "", errQuit
	}

	return "", fmt.Errorf("unknown command %q (try help)", cmd)
}

// runScript executes one command per line from r, writing results to w.
// Command errors are reported and do not stop the script.
func (s *shell) runScript(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out, err := s.exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return sc.Err()
}

// splitArgs splits line on whitespace, keeping double-quoted runs together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && (r == ' ' || r == '\t'):
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if pending {
		args = append(args, cur.String())
	}
	return args, nil
}
