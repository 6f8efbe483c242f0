// Package ui - Interactive quote session with live recompute
package ui

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/harleytans/reputigo-universal-calculator/core/engine"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
)

// SessionRunner drives an engine.Session from line-oriented input
type SessionRunner struct {
	w        *Writer
	session  *engine.Session
	currency types.Currency
	places   int32
	last     *engine.Quote
}

// NewSessionRunner creates a runner
func NewSessionRunner(w *Writer, session *engine.Session, currency types.Currency, places int32) *SessionRunner {
	return &SessionRunner{
		w:        w,
		session:  session,
		currency: currency,
		places:   places,
	}
}

const sessionHelp = `commands:
  use <vertical>          switch vertical, keeping what was entered before
  set <field> <value>     assign a field
  inc <field> [n]         raise a count
  dec <field> [n]         lower a count, never below its minimum
  discount <percent>      discount every quote
  show                    print the current quote
  fields                  list the active vertical's inputs
  help                    this text
  quit                    leave`

// Run reads commands from in until quit, EOF or ctx is done.
// Command errors are printed and the loop continues.
func (r *SessionRunner) Run(ctx context.Context, in io.Reader) error {
	r.w.Header("Service Quote")
	r.w.Info("session %s, type help for commands", r.session.ID())

	q, err := r.session.Select(r.session.Active())
	if err != nil {
		return err
	}
	r.last = q
	r.w.DisplayQuote(q, r.currency, r.places)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.w.Print("%s> ", r.session.Active())
		if !scanner.Scan() {
			r.w.Println("")
			return scanner.Err()
		}

		done, err := r.Execute(scanner.Text())
		if err != nil {
			r.w.Error("%v", err)
		}
		if done {
			return nil
		}
	}
}

// Execute runs a single command line. It reports true when the session
// should end.
func (r *SessionRunner) Execute(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		r.w.Println("%s", sessionHelp)
		return false, nil

	case "use":
		if len(args) != 2 {
			return false, usage("use <vertical>")
		}
		q, err := r.session.Select(args[1])
		if err != nil {
			return false, err
		}
		r.last = q
		r.w.DisplayQuote(q, r.currency, r.places)
		return false, nil

	case "set":
		if len(args) < 2 {
			return false, usage("set <field> <value>")
		}
		return false, r.apply(args[1], func() (*engine.Quote, error) {
			return r.session.Set(args[1], strings.Join(args[2:], " "))
		})

	case "inc", "dec":
		if len(args) < 2 || len(args) > 3 {
			return false, usage(cmd + " <field> [n]")
		}
		n := int64(1)
		if len(args) == 3 {
			v, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil || v < 0 {
				return false, usage(cmd + " <field> [n]")
			}
			n = v
		}
		if cmd == "dec" {
			n = -n
		}
		return false, r.apply(args[1], func() (*engine.Quote, error) {
			return r.session.Adjust(args[1], n)
		})

	case "discount":
		raw := ""
		if len(args) > 1 {
			raw = args[1]
		}
		return false, r.apply("discount", func() (*engine.Quote, error) {
			return r.session.SetDiscount(raw)
		})

	case "show":
		q, err := r.session.Recompute()
		if err != nil {
			return false, err
		}
		r.last = q
		r.w.DisplayQuote(q, r.currency, r.places)
		return false, nil

	case "fields":
		return false, r.fields()

	default:
		return false, usage("unknown command " + strconv.Quote(cmd) + ", type help")
	}
}

func (r *SessionRunner) apply(label string, edit func() (*engine.Quote, error)) error {
	q, err := edit()
	if err != nil {
		return err
	}
	r.w.DisplayChange(label, r.last, q, r.currency, r.places)
	r.last = q
	return nil
}

func (r *SessionRunner) fields() error {
	q, err := r.session.Recompute()
	if err != nil {
		return err
	}
	table := r.w.NewTable("Field", "Value")
	for _, kv := range q.Inputs.Entries() {
		table.AddRow(kv[0], kv[1])
	}
	table.Render()
	return nil
}

type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }

func usage(s string) error { return usageError(s) }
