package campussdk

import (
	"context"
	"fmt"
	"net/http"
)

// SubmitApplication files a new application for the signed-in student.
// The returned application carries only its id and initial status.
func (c *SDKClient) SubmitApplication(ctx context.Context, app ApplicationSubmission) SubmitApplicationResult {
	return invoke[SubmitApplicationResult](ctx, c, http.MethodPost, "/applications/submit", app)
}

func (c *SDKClient) MyApplications(ctx context.Context) ApplicationsResult {
	return invoke[ApplicationsResult](ctx, c, http.MethodGet, "/applications/my-applications", nil)
}

// AllApplications lists every application (employee only).
func (c *SDKClient) AllApplications(ctx context.Context) ApplicationsResult {
	return invoke[ApplicationsResult](ctx, c, http.MethodGet, "/applications/all", nil)
}

type statusUpdate struct {
	Status Status `json:"status"`
}

// UpdateApplicationStatus sets an application's status (employee only).
func (c *SDKClient) UpdateApplicationStatus(ctx context.Context, applicationID int64, status Status) ActionResult {
	if !status.Valid() {
		return failed[ActionResult](KindRequestFailed, MessageInvalidStatus)
	}
	path := fmt.Sprintf("/applications/%d/status", applicationID)
	return invoke[ActionResult](ctx, c, http.MethodPut, path, statusUpdate{Status: status})
}

// ApplicationStatistics returns application counts by status (employee only).
func (c *SDKClient) ApplicationStatistics(ctx context.Context) StatisticsResult {
	return invoke[StatisticsResult](ctx, c, http.MethodGet, "/applications/statistics", nil)
}
