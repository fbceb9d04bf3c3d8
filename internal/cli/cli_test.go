package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aussiebroadwan/campus/internal/cli/mocks"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

type harness struct {
	cli    *CLI
	api    *mocks.MockAPI
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &harness{
		cli:    New(api, out, errOut, logger),
		api:    api,
		out:    out,
		errOut: errOut,
	}
}

func (h *harness) run(args ...string) int {
	return h.cli.Run(context.Background(), args)
}

func (h *harness) signedInAs(role campussdk.Role) {
	user := &campussdk.UserProfile{
		FullName: "Ali",
		Username: "u1",
		Role:     role,
	}
	h.api.EXPECT().CurrentUser(gomock.Any()).Return(user).AnyTimes()
	h.api.EXPECT().RequireRole(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, want campussdk.Role) (campussdk.Session, error) {
			if want != role {
				return campussdk.Session{}, campussdk.ErrNotSignedIn
			}
			return campussdk.Session{Token: "T", User: user}, nil
		}).AnyTimes()
}

func ok() campussdk.Envelope {
	return campussdk.Envelope{Success: true}
}

func failedEnvelope(kind campussdk.ErrorKind, msg string) campussdk.Envelope {
	return campussdk.Envelope{Success: false, Kind: kind, Message: msg}
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	t.Run("no command", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		require.Equal(t, ExitUsage, h.run())
		require.Contains(t, h.errOut.String(), "Usage: campus <command>")
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		require.Equal(t, ExitOK, h.run("help"))
		require.Contains(t, h.errOut.String(), "send-request")
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		require.Equal(t, ExitUsage, h.run("dance"))
		require.Contains(t, h.errOut.String(), `unknown command "dance"`)
	})

	t.Run("bad flag", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		require.Equal(t, ExitUsage, h.run("logout", "-nope"))
	})

	t.Run("bad query", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		require.Equal(t, ExitUsage, h.run("logout", "-query", "[["))
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		require.Equal(t, ExitUsage, h.run("join"))
		require.Equal(t, ExitUsage, h.run("join", "abc"))
	})
}

func TestRun_RoleGating(t *testing.T) {
	t.Parallel()

	t.Run("signed out", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().RequireRole(gomock.Any(), campussdk.RoleStudent).Return(campussdk.Session{}, campussdk.ErrNotSignedIn)

		require.Equal(t, ExitFailure, h.run("applications"))
		require.Contains(t, h.errOut.String(), "not signed in as student")
	})

	t.Run("unreadable session", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().RequireRole(gomock.Any(), campussdk.RoleEmployee).Return(campussdk.Session{}, errors.New("disk on fire"))

		require.Equal(t, ExitFailure, h.run("stats"))
		require.Contains(t, h.errOut.String(), "failed to load session: disk on fire")
	})

	t.Run("help needs no session", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)

		require.Equal(t, ExitOK, h.run("decide", "-h"))
		require.Contains(t, h.errOut.String(), "-status")
		require.NotContains(t, h.errOut.String(), "not signed in")
	})

	t.Run("wrong role", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)

		require.Equal(t, ExitFailure, h.run("review"))
		require.Contains(t, h.errOut.String(), "not signed in as employee")
	})
}

func TestActivities(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.signedInAs(campussdk.RoleStudent)
	h.api.EXPECT().ListActivities(gomock.Any()).Return(campussdk.ActivitiesResult{
		Envelope: ok(),
		Activities: []campussdk.Activity{{
			ID:                 3,
			Name:               "Chess Club",
			Category:           "ثقافي",
			AvailableSlots:     20,
			RegisteredCount:    5,
			StartDate:          campussdk.NewTimestamp(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
			IsRegistered:       true,
			RegistrationStatus: campussdk.RegistrationRegistered,
		}},
	})

	require.Equal(t, ExitOK, h.run("activities"))
	out := h.out.String()
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "Chess Club")
	require.Contains(t, out, "15/20")
	require.Contains(t, out, "2025-03-01 09:00")
	require.Contains(t, out, "مسجل")
}

func TestApplications_FailureRendersEmptyState(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.signedInAs(campussdk.RoleStudent)
	h.api.EXPECT().MyApplications(gomock.Any()).Return(campussdk.ApplicationsResult{
		Envelope:     failedEnvelope(campussdk.KindBackendUnreachable, campussdk.MessageBackendUnreachable),
		Applications: []campussdk.Application{},
	})

	require.Equal(t, ExitFailure, h.run("applications"))
	require.Contains(t, h.out.String(), EmptyState)
	require.Contains(t, h.errOut.String(), campussdk.MessageBackendUnreachable)
}

func TestApplications_StructuredOutput(t *testing.T) {
	t.Parallel()

	result := campussdk.ApplicationsResult{
		Envelope: ok(),
		Applications: []campussdk.Application{
			{ID: 1, ActivityType: "رياضي", Status: campussdk.StatusPending},
			{ID: 2, ActivityType: "ثقافي", Status: campussdk.StatusApproved},
		},
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		h.api.EXPECT().MyApplications(gomock.Any()).Return(result)

		require.Equal(t, ExitOK, h.run("applications", "-json"))

		var got map[string]any
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
		require.Equal(t, true, got["success"])
		require.Len(t, got["applications"], 2)
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		h.api.EXPECT().MyApplications(gomock.Any()).Return(result)

		require.Equal(t, ExitOK, h.run("applications", "-query", "applications[?status=='مقبول'].id"))
		require.JSONEq(t, `[2]`, h.out.String())
	})

	t.Run("failed json keeps empty list", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		h.api.EXPECT().MyApplications(gomock.Any()).Return(campussdk.ApplicationsResult{
			Envelope:     failedEnvelope(campussdk.KindSessionExpired, campussdk.MessageSessionExpired),
			Applications: []campussdk.Application{},
		})

		require.Equal(t, ExitFailure, h.run("applications", "-json"))
		require.JSONEq(t, `{"success":false,"message":"`+campussdk.MessageSessionExpired+`","kind":"session_expired","applications":[]}`, h.out.String())
	})
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing name", []string{"-username", "u1", "-email", "u1@example.com", "-password", "secret1", "-confirm", "secret1"}, msgFieldsRequired},
		{"short password", []string{"-name", "Ali", "-username", "u1", "-email", "u1@example.com", "-password", "12345", "-confirm", "12345"}, msgPasswordTooShort},
		{"mismatch", []string{"-name", "Ali", "-username", "u1", "-email", "u1@example.com", "-password", "secret1", "-confirm", "secret2"}, msgPasswordMismatch},
		{"bad email", []string{"-name", "Ali", "-username", "u1", "-email", "nope", "-password", "secret1", "-confirm", "secret1"}, msgInvalidEmail},
		{"bad role", []string{"-name", "Ali", "-username", "u1", "-email", "u1@example.com", "-password", "secret1", "-confirm", "secret1", "-role", "admin"}, msgInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t)
			require.Equal(t, ExitFailure, h.run(append([]string{"register"}, tt.args...)...))
			require.Contains(t, h.errOut.String(), tt.want)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.api.EXPECT().Register(gomock.Any(), campussdk.RegisterRequest{
		FullName: "Ali",
		Username: "u1",
		Email:    "u1@example.com",
		Password: "secret1",
		Role:     campussdk.RoleEmployee,
	}).Return(campussdk.RegisterResult{Envelope: campussdk.Envelope{Success: true, Message: "تم إنشاء الحساب بنجاح"}})

	require.Equal(t, ExitOK, h.run("register", "-name", "Ali", "-username", "u1", "-email", "u1@example.com",
		"-password", "secret1", "-confirm", "secret1", "-role", "employee"))
	require.Contains(t, h.out.String(), "تم إنشاء الحساب بنجاح")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	creds := campussdk.Credentials{Username: "u1", Password: "p1", Role: campussdk.RoleStudent}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().Login(gomock.Any(), creds).Return(campussdk.LoginResult{
			Envelope: ok(),
			Token:    "T",
			User:     &campussdk.UserProfile{FullName: "Ali", Role: campussdk.RoleStudent},
		})

		require.Equal(t, ExitOK, h.run("login", "-username", "u1", "-password", "p1"))
		require.Contains(t, h.out.String(), msgLoggedIn)
		require.Contains(t, h.out.String(), "Ali (student)")
	})

	t.Run("json never prints the token", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().Login(gomock.Any(), creds).Return(campussdk.LoginResult{
			Envelope: ok(),
			Token:    "secret-token",
			User:     &campussdk.UserProfile{FullName: "Ali", Role: campussdk.RoleStudent},
		})

		require.Equal(t, ExitOK, h.run("login", "-username", "u1", "-password", "p1", "-json"))
		require.NotContains(t, h.out.String(), "secret-token")
		require.Contains(t, h.out.String(), "Ali")
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().Login(gomock.Any(), creds).Return(campussdk.LoginResult{
			Envelope: failedEnvelope(campussdk.KindRequestFailed, "اسم المستخدم أو كلمة المرور غير صحيحة"),
		})

		require.Equal(t, ExitFailure, h.run("login", "-username", "u1", "-password", "p1"))
		require.Contains(t, h.errOut.String(), "اسم المستخدم أو كلمة المرور غير صحيحة")
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		require.Equal(t, ExitFailure, h.run("login", "-username", "u1"))
		require.Contains(t, h.errOut.String(), msgFieldsRequired)
	})
}

func TestLogoutAndWhoami(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	gomock.InOrder(
		h.api.EXPECT().CurrentSession(gomock.Any()).Return(campussdk.Session{
			Token: "T",
			User:  &campussdk.UserProfile{FullName: "Ali", Role: campussdk.RoleStudent},
		}, nil),
		h.api.EXPECT().Logout(gomock.Any()).Return(campussdk.ActionResult{Envelope: ok()}),
		h.api.EXPECT().CurrentSession(gomock.Any()).Return(campussdk.Session{}, nil),
	)

	require.Equal(t, ExitOK, h.run("whoami"))
	require.Contains(t, h.out.String(), "Ali")
	require.Regexp(t, `expires:\s+-\n`, h.out.String())

	require.Equal(t, ExitOK, h.run("logout"))
	require.Contains(t, h.out.String(), msgLoggedOut)

	require.Equal(t, ExitFailure, h.run("whoami"))
	require.Contains(t, h.errOut.String(), "not signed in")
}

func TestWhoamiExpiry(t *testing.T) {
	t.Parallel()

	session := func(expiresAt time.Time) campussdk.Session {
		return campussdk.Session{
			Token:     "T",
			User:      &campussdk.UserProfile{FullName: "Sara", Role: campussdk.RoleEmployee},
			ExpiresAt: expiresAt,
		}
	}

	t.Run("live session", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(time.Hour)
		h := newHarness(t)
		h.api.EXPECT().CurrentSession(gomock.Any()).Return(session(exp), nil)

		require.Equal(t, ExitOK, h.run("whoami"))
		require.Regexp(t, `expires:\s+`+exp.Local().Format(dateLayout)+`\n`, h.out.String())
		require.NotContains(t, h.out.String(), msgSessionExpired)
	})

	t.Run("expired session is marked", func(t *testing.T) {
		t.Parallel()

		exp := time.Date(2020, 1, 2, 3, 4, 0, 0, time.Local)
		h := newHarness(t)
		h.api.EXPECT().CurrentSession(gomock.Any()).Return(session(exp), nil)

		require.Equal(t, ExitOK, h.run("whoami"))
		require.Contains(t, h.out.String(), "2020-01-02 03:04 "+msgSessionExpired)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		exp := time.Date(2020, 1, 2, 3, 4, 0, 0, time.UTC)
		h := newHarness(t)
		h.api.EXPECT().CurrentSession(gomock.Any()).Return(session(exp), nil)

		require.Equal(t, ExitOK, h.run("whoami", "-json"))

		var got map[string]any
		require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
		require.Equal(t, "Sara", got["fullName"])
		require.Equal(t, "2020-01-02T03:04:00Z", got["expiresAt"])
		require.Equal(t, true, got["expired"])
	})

	t.Run("unreadable session", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().CurrentSession(gomock.Any()).Return(campussdk.Session{}, errors.New("disk on fire"))

		require.Equal(t, ExitFailure, h.run("whoami"))
		require.Contains(t, h.errOut.String(), "disk on fire")
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().HealthCheck(gomock.Any()).Return(campussdk.Health{Status: campussdk.HealthStatusHealthy, Message: "running"})
		require.Equal(t, ExitOK, h.run("health"))
		require.Contains(t, h.out.String(), "healthy: running")
	})

	t.Run("offline", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.api.EXPECT().HealthCheck(gomock.Any()).Return(campussdk.Health{Status: campussdk.HealthStatusOffline, Message: campussdk.MessageOffline})
		require.Equal(t, ExitFailure, h.run("health"))
		require.Contains(t, h.out.String(), campussdk.MessageOffline)
	})
}

func TestRespond(t *testing.T) {
	t.Parallel()

	t.Run("pending request is answered", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		h.api.EXPECT().StudentRequests(gomock.Any()).Return(campussdk.RequestsResult{
			Envelope: ok(),
			Requests: []campussdk.EmployeeRequest{{ID: 4, Status: campussdk.StatusPending}},
		})
		h.api.EXPECT().RespondToRequest(gomock.Any(), int64(4), campussdk.StatusApproved, "سأشارك").
			Return(campussdk.ActionResult{Envelope: campussdk.Envelope{Success: true, Message: "تم الرد على الطلب بنجاح"}})

		require.Equal(t, ExitOK, h.run("respond", "-status", "approved", "-message", "سأشارك", "4"))
		require.Contains(t, h.out.String(), "تم الرد على الطلب بنجاح")
	})

	t.Run("answered request is not sent again", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		h.api.EXPECT().StudentRequests(gomock.Any()).Return(campussdk.RequestsResult{
			Envelope: ok(),
			Requests: []campussdk.EmployeeRequest{{ID: 4, Status: campussdk.StatusRejected}},
		})

		require.Equal(t, ExitOK, h.run("respond", "-status", "approved", "4"))
		require.Contains(t, h.errOut.String(), msgAlreadyAnswered)
	})

	t.Run("expired session stops before responding", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)
		h.api.EXPECT().StudentRequests(gomock.Any()).Return(campussdk.RequestsResult{
			Envelope: failedEnvelope(campussdk.KindSessionExpired, campussdk.MessageSessionExpired),
			Requests: []campussdk.EmployeeRequest{},
		})

		require.Equal(t, ExitFailure, h.run("respond", "-status", "approved", "4"))
		require.Contains(t, h.errOut.String(), campussdk.MessageSessionExpired)
	})

	t.Run("pending is not a response", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleStudent)

		require.Equal(t, ExitFailure, h.run("respond", "-status", "pending", "4"))
		require.Contains(t, h.errOut.String(), msgInvalidStatus)
	})
}

func TestReview_StatusFilter(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.signedInAs(campussdk.RoleEmployee)
	h.api.EXPECT().AllApplications(gomock.Any()).Return(campussdk.ApplicationsResult{
		Envelope: ok(),
		Applications: []campussdk.Application{
			{ID: 1, StudentName: "Ali", Status: campussdk.StatusPending},
			{ID: 2, StudentName: "Sara", Status: campussdk.StatusApproved},
		},
	})

	require.Equal(t, ExitOK, h.run("review", "-status", "pending"))
	require.Contains(t, h.out.String(), "Ali")
	require.NotContains(t, h.out.String(), "Sara")
}

func TestDecide(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.signedInAs(campussdk.RoleEmployee)
	h.api.EXPECT().UpdateApplicationStatus(gomock.Any(), int64(9), campussdk.StatusRejected).
		Return(campussdk.ActionResult{Envelope: failedEnvelope(campussdk.KindRequestFailed, "الطلب غير موجود")})

	require.Equal(t, ExitFailure, h.run("decide", "-status", "rejected", "9"))
	require.Contains(t, h.errOut.String(), "الطلب غير موجود")
}

func TestStats(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.signedInAs(campussdk.RoleEmployee)
	h.api.EXPECT().ApplicationStatistics(gomock.Any()).Return(campussdk.StatisticsResult{
		Envelope:   ok(),
		Statistics: campussdk.Statistics{Total: 6, Pending: 3, Approved: 2, Rejected: 1},
	})

	require.Equal(t, ExitOK, h.run("stats"))
	out := h.out.String()
	require.Contains(t, out, "total:")
	require.Contains(t, out, "6")
	require.Contains(t, out, "قيد الانتظار")
}

func TestSendRequest(t *testing.T) {
	t.Parallel()

	t.Run("broadcast with deadline", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		drafts := make(chan campussdk.RequestDraft, 1)
		h.api.EXPECT().SendEmployeeRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d campussdk.RequestDraft) campussdk.SendRequestResult {
				drafts <- d
				return campussdk.SendRequestResult{Envelope: campussdk.Envelope{Success: true, Message: "تم إرسال الطلب بنجاح"}}
			})

		require.Equal(t, ExitOK, h.run("send-request", "-type", "مشاركة", "-title", "Volunteers",
			"-description", "Open day", "-deadline", "2025-03-01T17:00"))

		d := <-drafts
		require.Nil(t, d.StudentID)
		require.NotNil(t, d.Deadline)
		require.Equal(t, 17, d.Deadline.Hour())
		require.Contains(t, h.out.String(), "تم إرسال الطلب بنجاح")
	})

	t.Run("single student", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		drafts := make(chan campussdk.RequestDraft, 1)
		h.api.EXPECT().SendEmployeeRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d campussdk.RequestDraft) campussdk.SendRequestResult {
				drafts <- d
				return campussdk.SendRequestResult{Envelope: ok()}
			})

		require.Equal(t, ExitOK, h.run("send-request", "-student", "7", "-type", "متابعة", "-title", "t", "-description", "d"))

		d := <-drafts
		require.NotNil(t, d.StudentID)
		require.Equal(t, int64(7), *d.StudentID)
		require.Nil(t, d.Deadline)
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		require.Equal(t, ExitFailure, h.run("send-request", "-type", "مشاركة", "-description", "d"))
		require.Contains(t, h.errOut.String(), msgFieldsRequired)
	})
}

func TestAddActivity(t *testing.T) {
	t.Parallel()

	base := []string{"add-activity", "-name", "Chess", "-description", "Weekly", "-category", "ثقافي",
		"-slots", "20", "-location", "Hall B"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		drafts := make(chan campussdk.ActivityDraft, 1)
		h.api.EXPECT().AddActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d campussdk.ActivityDraft) campussdk.AddActivityResult {
				drafts <- d
				return campussdk.AddActivityResult{Envelope: campussdk.Envelope{Success: true, Message: "تم إنشاء النشاط بنجاح"}}
			})

		require.Equal(t, ExitOK, h.run(append(base, "-start", "2025-03-01T09:00", "-end", "2025-03-01T11:00")...))

		d := <-drafts
		require.Equal(t, 20, d.AvailableSlots)
		require.NotNil(t, d.IsActive)
		require.True(t, *d.IsActive)
		require.Equal(t, 9, d.StartDate.Hour())
	})

	t.Run("end before start", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		require.Equal(t, ExitFailure, h.run(append(base, "-start", "2025-03-01T09:00", "-end", "2025-03-01T08:00")...))
		require.Contains(t, h.errOut.String(), msgEndBeforeStart)
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		require.Equal(t, ExitFailure, h.run(append(base, "-start", "tomorrow", "-end", "2025-03-01T08:00")...))
		require.Contains(t, h.errOut.String(), msgInvalidDate)
	})

	t.Run("zero slots", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t)
		h.signedInAs(campussdk.RoleEmployee)

		args := []string{"add-activity", "-name", "Chess", "-description", "Weekly", "-category", "ثقافي",
			"-location", "Hall B", "-start", "2025-03-01T09:00", "-end", "2025-03-01T11:00"}
		require.Equal(t, ExitFailure, h.run(args...))
		require.Contains(t, h.errOut.String(), msgInvalidSlots)
	})
}

func TestEmployeeActivities_Roster(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.signedInAs(campussdk.RoleEmployee)
	h.api.EXPECT().EmployeeActivities(gomock.Any()).Return(campussdk.EmployeeActivitiesResult{
		Envelope: ok(),
		Activities: []campussdk.EmployeeActivity{
			{ID: 1, Name: "Chess", IsActive: true, Students: []campussdk.RegisteredStudent{
				{ID: 5, Name: "Ali", Email: "ali@example.com", Status: campussdk.RegistrationAttended},
			}},
			{ID: 2, Name: "Football", Students: []campussdk.RegisteredStudent{}},
		},
	})

	require.Equal(t, ExitOK, h.run("employee-activities", "-students"))
	out := h.out.String()
	require.Contains(t, out, "ali@example.com")
	require.Contains(t, out, "حضر")
	require.Contains(t, out, EmptyState)
}

func TestSentRequests(t *testing.T) {
	t.Parallel()

	seven := int64(7)
	h := newHarness(t)
	h.signedInAs(campussdk.RoleEmployee)
	h.api.EXPECT().MyEmployeeRequests(gomock.Any()).Return(campussdk.RequestsResult{
		Envelope: ok(),
		Requests: []campussdk.EmployeeRequest{
			{ID: 1, Title: "Everyone", Status: campussdk.StatusPending},
			{ID: 2, Title: "Just one", StudentID: &seven, Status: campussdk.StatusApproved, ResponseMessage: "تم"},
		},
	})

	require.Equal(t, ExitOK, h.run("sent-requests"))
	out := h.out.String()
	require.Contains(t, out, "*")
	require.Contains(t, out, "#7")
	require.Contains(t, out, "مقبول")
}
