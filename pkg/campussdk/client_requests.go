package campussdk

import (
	"context"
	"fmt"
	"net/http"
)

// SendEmployeeRequest sends a request to one student, or to all students
// when draft.StudentID is nil.
func (c *SDKClient) SendEmployeeRequest(ctx context.Context, draft RequestDraft) SendRequestResult {
	return invoke[SendRequestResult](ctx, c, http.MethodPost, "/employee/requests/send", draft)
}

// MyEmployeeRequests lists the requests the signed-in employee has sent.
func (c *SDKClient) MyEmployeeRequests(ctx context.Context) RequestsResult {
	return invoke[RequestsResult](ctx, c, http.MethodGet, "/employee/requests/my-requests", nil)
}

func (c *SDKClient) EmployeeRequestStatistics(ctx context.Context) StatisticsResult {
	return invoke[StatisticsResult](ctx, c, http.MethodGet, "/employee/requests/statistics", nil)
}

// StudentRequests lists requests addressed to the signed-in student,
// including broadcasts.
func (c *SDKClient) StudentRequests(ctx context.Context) RequestsResult {
	return invoke[RequestsResult](ctx, c, http.MethodGet, "/student/requests", nil)
}

type requestResponse struct {
	Status          Status `json:"status"`
	ResponseMessage string `json:"responseMessage"`
}

// RespondToRequest approves or rejects a request. Pending is not a valid
// response.
func (c *SDKClient) RespondToRequest(ctx context.Context, requestID int64, status Status, responseMessage string) ActionResult {
	if status != StatusApproved && status != StatusRejected {
		return failed[ActionResult](KindRequestFailed, MessageInvalidStatus)
	}
	path := fmt.Sprintf("/student/requests/%d/respond", requestID)
	return invoke[ActionResult](ctx, c, http.MethodPut, path, requestResponse{
		Status:          status,
		ResponseMessage: responseMessage,
	})
}
