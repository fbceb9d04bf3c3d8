package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

// EmptyState is shown in place of a list with no items, including a list
// left empty by a failed call.
const EmptyState = "لا توجد بيانات حالياً"

const dateLayout = "2006-01-02 15:04"

type outputOptions struct {
	json  bool
	query string
}

func (o outputOptions) structured() bool {
	return o.json || o.query != ""
}

// newFlagSet returns a flag set carrying the output flags every command
// accepts.
func (c *CLI) newFlagSet(name string) (*flag.FlagSet, *outputOptions) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)

	opts := &outputOptions{}
	fs.BoolVar(&opts.json, "json", false, "print the raw result envelope as JSON")
	fs.StringVar(&opts.query, "query", "", "JMESPath expression applied to the JSON result")
	return fs, opts
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &usageError{err: err}
	}
	if opts := fs.Lookup("query"); opts != nil && opts.Value.String() != "" {
		if _, err := jmespath.Compile(opts.Value.String()); err != nil {
			return usagef("invalid -query: %v", err)
		}
	}
	return nil
}

// argID reads the single positional id argument.
func argID(fs *flag.FlagSet, what string) (int64, error) {
	if fs.NArg() != 1 {
		return 0, usagef("expected exactly one %s id", what)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil || id <= 0 {
		return 0, usagef("invalid %s id %q", what, fs.Arg(0))
	}
	return id, nil
}

// writeStructured prints v as indented JSON, filtered through the query
// when one is set.
func (c *CLI) writeStructured(opts outputOptions, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	var out any = json.RawMessage(data)
	if opts.query != "" {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		out, err = jmespath.Search(opts.query, doc)
		if err != nil {
			return fmt.Errorf("evaluate query: %w", err)
		}
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(pretty))
	return err
}

// notify shows a failed envelope's message as a notification line.
func (c *CLI) notify(env campussdk.Envelope) {
	if env.Success || env.Message == "" {
		return
	}
	fmt.Fprintf(c.errOut, "! %s\n", env.Message)
}

func envelopeErr(env campussdk.Envelope) error {
	if env.Success {
		return nil
	}
	return errFailed
}

// renderList prints items as a table, or EmptyState when there are none.
// A failed call still renders; its message becomes a notification.
func renderList[T any](
	c *CLI,
	opts outputOptions,
	result any,
	env campussdk.Envelope,
	items []T,
	header []string,
	row func(T) []string,
) error {
	if opts.structured() {
		if err := c.writeStructured(opts, result); err != nil {
			return err
		}
		return envelopeErr(env)
	}

	c.notify(env)

	if len(items) == 0 {
		fmt.Fprintln(c.out, EmptyState)
		return envelopeErr(env)
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, item := range items {
		fmt.Fprintln(tw, strings.Join(row(item), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return envelopeErr(env)
}

// renderAction prints the server's message for a call that returns no data.
func (c *CLI) renderAction(opts outputOptions, result any, env campussdk.Envelope, fallback string) error {
	if opts.structured() {
		if err := c.writeStructured(opts, result); err != nil {
			return err
		}
		return envelopeErr(env)
	}

	if !env.Success {
		c.notify(env)
		return errFailed
	}

	msg := env.Message
	if msg == "" {
		msg = fallback
	}
	fmt.Fprintln(c.out, msg)
	return nil
}

// renderFields prints label/value pairs aligned in two columns.
func (c *CLI) renderFields(pairs [][2]string) error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s:\t%s\n", p[0], p[1])
	}
	return tw.Flush()
}

func formatTime(ts campussdk.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format(dateLayout)
}

func formatStatus(s campussdk.Status) string {
	if l := s.Literal(); l != "" {
		return l
	}
	return "-"
}

func formatRegistration(s campussdk.RegistrationStatus) string {
	if l := s.Literal(); l != "" {
		return l
	}
	return "-"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
