package cli

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

const msgAlreadyAnswered = "هذا الطلب تمت الإجابة عليه بالفعل"

func (c *CLI) runActivities(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("activities")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.ListActivities(ctx)
	return renderList(c, *opts, res, res.Envelope, res.Activities,
		[]string{"ID", "NAME", "CATEGORY", "LOCATION", "SLOTS", "START", "REGISTERED"},
		func(a campussdk.Activity) []string {
			registered := "-"
			if a.IsRegistered {
				registered = formatRegistration(a.RegistrationStatus)
			}
			return []string{
				itoa(a.ID),
				a.Name,
				orDash(a.Category),
				orDash(a.Location),
				fmt.Sprintf("%d/%d", a.SlotsRemaining(), a.AvailableSlots),
				formatTime(a.StartDate),
				registered,
			}
		})
}

func (c *CLI) runJoin(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("join")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, "activity")
	if err != nil {
		return err
	}

	res := c.api.RegisterForActivity(ctx, id)
	return c.renderAction(*opts, res, res.Envelope, "")
}

func (c *CLI) runRegistrations(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("registrations")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.MyRegistrations(ctx)
	return renderList(c, *opts, res, res.Envelope, res.Registrations,
		[]string{"ID", "ACTIVITY", "LOCATION", "STATUS", "REGISTERED"},
		func(r campussdk.Registration) []string {
			return []string{
				itoa(r.ID),
				r.Activity.Name,
				orDash(r.Activity.Location),
				formatRegistration(r.Status),
				formatTime(r.RegisteredAt),
			}
		})
}

func (c *CLI) runApply(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("apply")
	var form applicationForm
	fs.StringVar(&form.Name, "name", "", "student name (defaults to the signed-in user)")
	fs.StringVar(&form.ActivityType, "type", "", "activity type")
	fs.StringVar(&form.ActivityNumber, "number", "", "activity number")
	fs.StringVar(&form.College, "college", "", "college")
	fs.StringVar(&form.Department, "department", "", "department")
	fs.StringVar(&form.Specialization, "specialization", "", "specialization")
	fs.StringVar(&form.Phone, "phone", "", "phone number")
	fs.StringVar(&form.Details, "details", "", "additional details")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	if form.Name == "" {
		if user := c.api.CurrentUser(ctx); user != nil {
			form.Name = user.FullName
		}
	}

	res := c.api.SubmitApplication(ctx, campussdk.ApplicationSubmission{
		Name:           form.Name,
		ActivityType:   form.ActivityType,
		ActivityNumber: form.ActivityNumber,
		College:        form.College,
		Department:     form.Department,
		Specialization: form.Specialization,
		Phone:          form.Phone,
		Details:        form.Details,
	})
	return c.renderAction(*opts, res, res.Envelope, "")
}

func (c *CLI) runApplications(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("applications")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.MyApplications(ctx)
	return renderList(c, *opts, res, res.Envelope, res.Applications,
		[]string{"ID", "TYPE", "NUMBER", "COLLEGE", "STATUS", "SUBMITTED"},
		func(a campussdk.Application) []string {
			return []string{
				itoa(a.ID),
				a.ActivityType,
				orDash(a.ActivityNumber),
				orDash(a.College),
				formatStatus(a.Status),
				formatTime(a.SubmittedAt),
			}
		})
}

func (c *CLI) runInbox(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("inbox")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.StudentRequests(ctx)
	return renderList(c, *opts, res, res.Envelope, res.Requests,
		[]string{"ID", "TITLE", "FROM", "TYPE", "DEADLINE", "STATUS"},
		func(r campussdk.EmployeeRequest) []string {
			return []string{
				itoa(r.ID),
				r.Title,
				orDash(r.EmployeeName),
				orDash(r.RequestType),
				formatTime(r.Deadline),
				formatStatus(r.Status),
			}
		})
}

func (c *CLI) runRespond(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("respond")
	var (
		form    decisionForm
		message string
	)
	fs.StringVar(&form.Status, "status", "", "approved or rejected")
	fs.StringVar(&message, "message", "", "optional response message")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, "request")
	if err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	// Answered requests are not sent again. When the inbox cannot be
	// loaded the backend makes the call, unless the session is gone.
	inbox := c.api.StudentRequests(ctx)
	if inbox.Kind == campussdk.KindSessionExpired {
		return c.renderAction(*opts, inbox, inbox.Envelope, "")
	}
	for _, r := range inbox.Requests {
		if r.ID == id && r.Status != campussdk.StatusPending && r.Status != "" {
			fmt.Fprintln(c.errOut, msgAlreadyAnswered)
			return nil
		}
	}

	res := c.api.RespondToRequest(ctx, id, campussdk.Status(form.Status), message)
	return c.renderAction(*opts, res, res.Envelope, "")
}
