package campussdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListActivities returns the active activities, each annotated with the
// caller's registration state.
func (c *SDKClient) ListActivities(ctx context.Context) ActivitiesResult {
	return invoke[ActivitiesResult](ctx, c, http.MethodGet, "/activities", nil)
}

// RegisterForActivity enrolls the signed-in student.
func (c *SDKClient) RegisterForActivity(ctx context.Context, activityID int64) ActionResult {
	path := fmt.Sprintf("/activities/%d/register", activityID)
	return invoke[ActionResult](ctx, c, http.MethodPost, path, nil)
}

// MyRegistrations lists the signed-in student's registrations.
func (c *SDKClient) MyRegistrations(ctx context.Context) RegistrationsResult {
	return invoke[RegistrationsResult](ctx, c, http.MethodGet, "/activities/my-registrations", nil)
}

// EmployeeActivities lists every activity with its roster.
func (c *SDKClient) EmployeeActivities(ctx context.Context) EmployeeActivitiesResult {
	return invoke[EmployeeActivitiesResult](ctx, c, http.MethodGet, "/employee/activities", nil)
}

// AddActivity creates an activity (employee only).
func (c *SDKClient) AddActivity(ctx context.Context, draft ActivityDraft) AddActivityResult {
	return invoke[AddActivityResult](ctx, c, http.MethodPost, "/employee/activities/add", draft)
}
