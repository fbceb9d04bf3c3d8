// Package cli implements the campus command line: one command per view
// action, each a thin shell over a Domain Endpoint.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=mocks/api_mock.go github.com/aussiebroadwan/campus/internal/cli API

// API is the part of *campussdk.SDKClient the commands use.
type API interface {
	HealthCheck(ctx context.Context) campussdk.Health

	Register(ctx context.Context, req campussdk.RegisterRequest) campussdk.RegisterResult
	Login(ctx context.Context, creds campussdk.Credentials) campussdk.LoginResult
	Logout(ctx context.Context) campussdk.ActionResult
	CurrentUser(ctx context.Context) *campussdk.UserProfile
	CurrentSession(ctx context.Context) (campussdk.Session, error)
	RequireRole(ctx context.Context, role campussdk.Role) (campussdk.Session, error)

	ListActivities(ctx context.Context) campussdk.ActivitiesResult
	RegisterForActivity(ctx context.Context, activityID int64) campussdk.ActionResult
	MyRegistrations(ctx context.Context) campussdk.RegistrationsResult
	EmployeeActivities(ctx context.Context) campussdk.EmployeeActivitiesResult
	AddActivity(ctx context.Context, draft campussdk.ActivityDraft) campussdk.AddActivityResult

	SubmitApplication(ctx context.Context, app campussdk.ApplicationSubmission) campussdk.SubmitApplicationResult
	MyApplications(ctx context.Context) campussdk.ApplicationsResult
	AllApplications(ctx context.Context) campussdk.ApplicationsResult
	UpdateApplicationStatus(ctx context.Context, applicationID int64, status campussdk.Status) campussdk.ActionResult
	ApplicationStatistics(ctx context.Context) campussdk.StatisticsResult

	SendEmployeeRequest(ctx context.Context, draft campussdk.RequestDraft) campussdk.SendRequestResult
	MyEmployeeRequests(ctx context.Context) campussdk.RequestsResult
	EmployeeRequestStatistics(ctx context.Context) campussdk.StatisticsResult
	StudentRequests(ctx context.Context) campussdk.RequestsResult
	RespondToRequest(ctx context.Context, requestID int64, status campussdk.Status, responseMessage string) campussdk.ActionResult
}

var _ API = (*campussdk.SDKClient)(nil)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	// errFailed means the result was already shown to the user and only
	// the exit status is left to report.
	errFailed = errors.New("command failed")

	errNotSignedIn = errors.New("not signed in")
)

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

type commandFn func(ctx context.Context, args []string) error

type command struct {
	name        string
	description string

	// role gates the command. Empty means anyone may run it.
	role campussdk.Role
	run  commandFn
}

// CLI dispatches command lines to the API. Results go to out, notifications
// and usage to errOut.
type CLI struct {
	api    API
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func New(api API, out, errOut io.Writer, logger *slog.Logger) *CLI {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLI{api: api, out: out, errOut: errOut, logger: logger}
}

// Run executes one command line and returns the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		c.printUsage()
		return ExitUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		c.printUsage()
		return ExitOK
	}

	cmd, ok := c.commands()[name]
	if !ok {
		fmt.Fprintf(c.errOut, "unknown command %q\n\n", name)
		c.printUsage()
		return ExitUsage
	}

	if cmd.role != "" && !wantsHelp(args[1:]) {
		if err := c.requireRole(ctx, cmd.role); err != nil {
			fmt.Fprintf(c.errOut, "%s: %v\n", name, err)
			return ExitFailure
		}
	}

	err := cmd.run(ctx, args[1:])

	var (
		uerr *usageError
		ferr *formError
	)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errFailed):
		return ExitFailure
	case errors.As(err, &ferr):
		fmt.Fprintf(c.errOut, "! %s\n", ferr.message)
		return ExitFailure
	case errors.As(err, &uerr):
		fmt.Fprintf(c.errOut, "%s: %v\n", name, uerr)
		return ExitUsage
	default:
		c.logger.ErrorContext(ctx, "command failed", "command", name, "error", err)
		fmt.Fprintf(c.errOut, "%s: %v\n", name, err)
		return ExitFailure
	}
}

// requireRole stands in for the page-load redirect of the role views.
func (c *CLI) requireRole(ctx context.Context, role campussdk.Role) error {
	_, err := c.api.RequireRole(ctx, role)
	if errors.Is(err, campussdk.ErrNotSignedIn) {
		return fmt.Errorf("%w as %s, run 'campus login -role %s'", errNotSignedIn, role, role)
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	return nil
}

// wantsHelp reports whether a command's arguments ask for its flag help.
// Help is shown without a session.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "-help", "--h", "--help":
			return true
		case "--":
			return false
		}
	}
	return false
}

func (c *CLI) commands() map[string]command {
	list := []command{
		{name: "health", description: "Check whether the backend is reachable", run: c.runHealth},
		{name: "register", description: "Create an account", run: c.runRegister},
		{name: "login", description: "Sign in and store the session", run: c.runLogin},
		{name: "logout", description: "Clear the stored session", run: c.runLogout},
		{name: "whoami", description: "Show the signed-in user", run: c.runWhoami},

		{name: "activities", description: "List activities", role: campussdk.RoleStudent, run: c.runActivities},
		{name: "join", description: "Register for an activity", role: campussdk.RoleStudent, run: c.runJoin},
		{name: "registrations", description: "List your activity registrations", role: campussdk.RoleStudent, run: c.runRegistrations},
		{name: "apply", description: "Submit an activity application", role: campussdk.RoleStudent, run: c.runApply},
		{name: "applications", description: "List your applications", role: campussdk.RoleStudent, run: c.runApplications},
		{name: "inbox", description: "List requests sent to you", role: campussdk.RoleStudent, run: c.runInbox},
		{name: "respond", description: "Approve or reject a request", role: campussdk.RoleStudent, run: c.runRespond},

		{name: "review", description: "List all applications", role: campussdk.RoleEmployee, run: c.runReview},
		{name: "decide", description: "Approve or reject an application", role: campussdk.RoleEmployee, run: c.runDecide},
		{name: "stats", description: "Application counts by status", role: campussdk.RoleEmployee, run: c.runStats},
		{name: "employee-activities", description: "List activities with their rosters", role: campussdk.RoleEmployee, run: c.runEmployeeActivities},
		{name: "add-activity", description: "Create an activity", role: campussdk.RoleEmployee, run: c.runAddActivity},
		{name: "send-request", description: "Send a request to a student or to all students", role: campussdk.RoleEmployee, run: c.runSendRequest},
		{name: "sent-requests", description: "List requests you have sent", role: campussdk.RoleEmployee, run: c.runSentRequests},
		{name: "request-stats", description: "Sent request counts by status", role: campussdk.RoleEmployee, run: c.runRequestStats},
	}

	cmds := make(map[string]command, len(list))
	for _, cmd := range list {
		cmds[cmd.name] = cmd
	}
	return cmds
}

func (c *CLI) printUsage() {
	fmt.Fprintf(c.errOut, "Usage: campus <command> [flags]\n\n")
	fmt.Fprintf(c.errOut, "Available commands:\n")

	cmds := c.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := cmds[name]
		scope := ""
		if cmd.role != "" {
			scope = " (" + string(cmd.role) + ")"
		}
		fmt.Fprintf(c.errOut, "  %-20s %s%s\n", name, cmd.description, scope)
	}

	fmt.Fprintf(c.errOut, "\nEvery command accepts -json and -query <jmespath>.\n")
}
