package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

func (c *CLI) runReview(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("review")
	filter := fs.String("status", "", "only show applications with this status (pending, approved, rejected)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var want campussdk.Status
	if *filter != "" {
		s, err := campussdk.ParseStatus(*filter)
		if err != nil {
			return usagef("%v", err)
		}
		want = s
	}

	res := c.api.AllApplications(ctx)
	if want != "" {
		kept := make([]campussdk.Application, 0, len(res.Applications))
		for _, a := range res.Applications {
			if a.Status == want {
				kept = append(kept, a)
			}
		}
		res.Applications = kept
	}

	return renderList(c, *opts, res, res.Envelope, res.Applications,
		[]string{"ID", "STUDENT", "TYPE", "NUMBER", "COLLEGE", "PHONE", "STATUS", "SUBMITTED"},
		func(a campussdk.Application) []string {
			return []string{
				itoa(a.ID),
				a.StudentName,
				a.ActivityType,
				orDash(a.ActivityNumber),
				orDash(a.College),
				orDash(a.Phone),
				formatStatus(a.Status),
				formatTime(a.SubmittedAt),
			}
		})
}

func (c *CLI) runDecide(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("decide")
	var form decisionForm
	fs.StringVar(&form.Status, "status", "", "approved or rejected")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, "application")
	if err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	res := c.api.UpdateApplicationStatus(ctx, id, campussdk.Status(form.Status))
	return c.renderAction(*opts, res, res.Envelope, "")
}

func (c *CLI) runStats(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("stats")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.ApplicationStatistics(ctx)
	return c.renderStatistics(*opts, res)
}

func (c *CLI) runRequestStats(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("request-stats")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.EmployeeRequestStatistics(ctx)
	return c.renderStatistics(*opts, res)
}

// renderStatistics shows zero counts when the call failed, the same way
// lists fall back to the empty state.
func (c *CLI) renderStatistics(opts outputOptions, res campussdk.StatisticsResult) error {
	if opts.structured() {
		if err := c.writeStructured(opts, res); err != nil {
			return err
		}
		return envelopeErr(res.Envelope)
	}

	c.notify(res.Envelope)
	st := res.Statistics
	if err := c.renderFields([][2]string{
		{"total", strconv.Itoa(st.Total)},
		{campussdk.StatusPending.Literal(), strconv.Itoa(st.Pending)},
		{campussdk.StatusApproved.Literal(), strconv.Itoa(st.Approved)},
		{campussdk.StatusRejected.Literal(), strconv.Itoa(st.Rejected)},
	}); err != nil {
		return err
	}
	return envelopeErr(res.Envelope)
}

func (c *CLI) runEmployeeActivities(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("employee-activities")
	roster := fs.Bool("students", false, "list the registered students of each activity")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.EmployeeActivities(ctx)
	if err := renderList(c, *opts, res, res.Envelope, res.Activities,
		[]string{"ID", "NAME", "CATEGORY", "REGISTERED", "SLOTS", "START", "END", "ACTIVE"},
		func(a campussdk.EmployeeActivity) []string {
			return []string{
				itoa(a.ID),
				a.Name,
				orDash(a.Category),
				strconv.Itoa(a.RegisteredCount),
				strconv.Itoa(a.AvailableSlots),
				formatTime(a.StartDate),
				formatTime(a.EndDate),
				strconv.FormatBool(a.IsActive),
			}
		}); err != nil || !*roster || opts.structured() {
		return err
	}

	for _, a := range res.Activities {
		fmt.Fprintf(c.out, "\n%s\n", a.Name)
		if err := renderList(c, *opts, res, res.Envelope, a.Students,
			[]string{"  ID", "NAME", "EMAIL", "STATUS", "REGISTERED"},
			func(s campussdk.RegisteredStudent) []string {
				return []string{
					"  " + itoa(s.ID),
					s.Name,
					orDash(s.Email),
					formatRegistration(s.Status),
					formatTime(s.RegisteredAt),
				}
			}); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) runAddActivity(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("add-activity")
	var (
		form     activityForm
		inactive bool
	)
	fs.StringVar(&form.Name, "name", "", "activity name")
	fs.StringVar(&form.Description, "description", "", "description")
	fs.StringVar(&form.Category, "category", "", "category")
	fs.IntVar(&form.Slots, "slots", 0, "available slots")
	fs.StringVar(&form.Location, "location", "", "location")
	fs.StringVar(&form.Start, "start", "", "start time, e.g. 2025-03-01T09:00")
	fs.StringVar(&form.End, "end", "", "end time")
	fs.BoolVar(&inactive, "inactive", false, "create the activity hidden from students")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	start, err := campussdk.ParseTimestamp(form.Start)
	if err != nil {
		return &formError{message: msgInvalidDate}
	}
	end, err := campussdk.ParseTimestamp(form.End)
	if err != nil {
		return &formError{message: msgInvalidDate}
	}
	if !end.After(start.Time) {
		return &formError{message: msgEndBeforeStart}
	}

	active := !inactive
	res := c.api.AddActivity(ctx, campussdk.ActivityDraft{
		Name:           form.Name,
		Description:    form.Description,
		Category:       form.Category,
		AvailableSlots: form.Slots,
		Location:       form.Location,
		StartDate:      start,
		EndDate:        end,
		IsActive:       &active,
	})
	return c.renderAction(*opts, res, res.Envelope, "")
}

func (c *CLI) runSendRequest(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("send-request")
	var form requestForm
	fs.Int64Var(&form.StudentID, "student", 0, "student id, 0 sends to all students")
	fs.StringVar(&form.RequestType, "type", "", "request type")
	fs.StringVar(&form.Title, "title", "", "title")
	fs.StringVar(&form.Description, "description", "", "description")
	fs.StringVar(&form.ActivityName, "activity-name", "", "related activity name")
	fs.StringVar(&form.ActivityCode, "activity-code", "", "related activity code")
	fs.StringVar(&form.Deadline, "deadline", "", "response deadline, e.g. 2025-03-01T17:00")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := checkForm(form); err != nil {
		return err
	}

	draft := campussdk.RequestDraft{
		RequestType:  form.RequestType,
		Title:        form.Title,
		Description:  form.Description,
		ActivityName: form.ActivityName,
		ActivityCode: form.ActivityCode,
	}
	if form.StudentID > 0 {
		draft.StudentID = &form.StudentID
	}
	if form.Deadline != "" {
		deadline, err := campussdk.ParseTimestamp(form.Deadline)
		if err != nil {
			return &formError{message: msgInvalidDate}
		}
		draft.Deadline = &deadline
	}

	res := c.api.SendEmployeeRequest(ctx, draft)
	return c.renderAction(*opts, res, res.Envelope, "")
}

func (c *CLI) runSentRequests(ctx context.Context, args []string) error {
	fs, opts := c.newFlagSet("sent-requests")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	res := c.api.MyEmployeeRequests(ctx)
	return renderList(c, *opts, res, res.Envelope, res.Requests,
		[]string{"ID", "TITLE", "TO", "TYPE", "DEADLINE", "STATUS", "RESPONSE"},
		func(r campussdk.EmployeeRequest) []string {
			return []string{
				itoa(r.ID),
				r.Title,
				studentTarget(r),
				orDash(r.RequestType),
				formatTime(r.Deadline),
				formatStatus(r.Status),
				orDash(r.ResponseMessage),
			}
		})
}

// studentTarget renders the addressee of a request; "*" is every student.
func studentTarget(r campussdk.EmployeeRequest) string {
	if r.StudentName != "" {
		return r.StudentName
	}
	if r.Broadcast() {
		return "*"
	}
	return "#" + strconv.FormatInt(*r.StudentID, 10)
}
