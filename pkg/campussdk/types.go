package campussdk

import "encoding/json"

// ============================================================================
// Envelope
// ============================================================================

// Envelope is the uniform shape every Domain Endpoint returns. A failed call
// is always reported here, never as a Go error.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Kind classifies the failure. Empty when Success is true.
	Kind ErrorKind `json:"kind,omitempty"`
}

func (e *Envelope) envelope() *Envelope { return e }

// Failed reports whether the call did not succeed.
func (e Envelope) Failed() bool { return !e.Success }

// ============================================================================
// Accounts
// ============================================================================

// UserProfile is the cached identity of the signed-in user. Only Role is
// used for routing; the rest is carried for display.
type UserProfile struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"fullName"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`

	// raw is the object as received, including fields not modelled above.
	raw json.RawMessage
}

func (u *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = UserProfile(p)
	u.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the profile exactly as the server sent it, or nil for a
// profile constructed in code.
func (u *UserProfile) Raw() json.RawMessage {
	return u.raw
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Credentials are posted to /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type RegisterResult struct {
	Envelope
}

type LoginResult struct {
	Envelope
	Token string       `json:"token,omitempty"`
	User  *UserProfile `json:"user,omitempty"`
}

// ============================================================================
// Activities
// ============================================================================

type Activity struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	AvailableSlots     int                `json:"availableSlots"`
	RegisteredCount    int                `json:"registeredCount"`
	Location           string             `json:"location"`
	StartDate          Timestamp          `json:"startDate"`
	EndDate            Timestamp          `json:"endDate"`
	IsRegistered       bool               `json:"isRegistered"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
}

// SlotsRemaining never goes below zero.
func (a Activity) SlotsRemaining() int {
	return max(0, a.AvailableSlots-a.RegisteredCount)
}

// IsFull reports whether no slots remain.
func (a Activity) IsFull() bool { return a.RegisteredCount >= a.AvailableSlots }

// ActivitySummary is the activity embedded in a registration.
type ActivitySummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

type Registration struct {
	ID           int64              `json:"id"`
	Activity     ActivitySummary    `json:"activity"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt Timestamp          `json:"registeredAt"`
}

// RegisteredStudent is one entry of an activity's roster (employee view).
type RegisteredStudent struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	RegisteredAt Timestamp          `json:"registeredAt"`
	Status       RegistrationStatus `json:"status"`
}

type EmployeeActivity struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	AvailableSlots  int                 `json:"availableSlots"`
	RegisteredCount int                 `json:"registeredCount"`
	Location        string              `json:"location"`
	StartDate       Timestamp           `json:"startDate"`
	EndDate         Timestamp           `json:"endDate"`
	IsActive        bool                `json:"isActive"`
	Students        []RegisteredStudent `json:"students"`
}

// ActivityDraft is posted by an employee to create an activity.
type ActivityDraft struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	AvailableSlots int       `json:"availableSlots"`
	Location       string    `json:"location"`
	StartDate      Timestamp `json:"startDate"`
	EndDate        Timestamp `json:"endDate"`
	IsActive       *bool     `json:"isActive,omitempty"`
}

type ActivitiesResult struct {
	Envelope
	Activities []Activity `json:"activities"`
}

func (r *ActivitiesResult) applyDefaults() {
	if r.Activities == nil {
		r.Activities = []Activity{}
	}
}

type RegistrationsResult struct {
	Envelope
	Registrations []Registration `json:"registrations"`
}

func (r *RegistrationsResult) applyDefaults() {
	if r.Registrations == nil {
		r.Registrations = []Registration{}
	}
}

type EmployeeActivitiesResult struct {
	Envelope
	Activities []EmployeeActivity `json:"activities"`
}

func (r *EmployeeActivitiesResult) applyDefaults() {
	if r.Activities == nil {
		r.Activities = []EmployeeActivity{}
	}
	for i := range r.Activities {
		if r.Activities[i].Students == nil {
			r.Activities[i].Students = []RegisteredStudent{}
		}
	}
}

type AddActivityResult struct {
	Envelope
	Activity EmployeeActivity `json:"activity"`
}

func (r *AddActivityResult) applyDefaults() {
	if r.Activity.Students == nil {
		r.Activity.Students = []RegisteredStudent{}
	}
}

// ActionResult carries only the envelope (register for activity, status
// changes, responses).
type ActionResult struct {
	Envelope
}

// ============================================================================
// Applications
// ============================================================================

type Application struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	StudentName    string    `json:"studentName"`
	ActivityType   string    `json:"activityType"`
	ActivityNumber string    `json:"activityNumber"`
	College        string    `json:"college"`
	Department     string    `json:"department"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	Details        string    `json:"details"`
	Status         Status    `json:"status"`
	SubmittedAt    Timestamp `json:"submittedAt"`
	UpdatedAt      Timestamp `json:"updatedAt"`
}

// ApplicationSubmission is the student's application form.
type ApplicationSubmission struct {
	Name           string `json:"name"`
	ActivityType   string `json:"activityType"`
	ActivityNumber string `json:"activityNumber"`
	College        string `json:"college"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Details        string `json:"details"`
}

type SubmitApplicationResult struct {
	Envelope
	Application Application `json:"application"`
}

type ApplicationsResult struct {
	Envelope
	Applications []Application `json:"applications"`
}

func (r *ApplicationsResult) applyDefaults() {
	if r.Applications == nil {
		r.Applications = []Application{}
	}
}

// Statistics are aggregate counts by status.
type Statistics struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type StatisticsResult struct {
	Envelope
	Statistics Statistics `json:"statistics"`
}

// ============================================================================
// Employee requests
// ============================================================================

type EmployeeRequest struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employeeId"`
	EmployeeName    string    `json:"employeeName"`
	StudentID       *int64    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	RequestType     string    `json:"requestType"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ActivityName    string    `json:"activityName"`
	ActivityCode    string    `json:"activityCode"`
	Deadline        Timestamp `json:"deadline"`
	Status          Status    `json:"status"`
	ResponseMessage string    `json:"responseMessage"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
	RespondedAt     Timestamp `json:"respondedAt"`
}

// Broadcast reports whether the request targets every student.
func (r EmployeeRequest) Broadcast() bool { return r.StudentID == nil }

// RequestDraft is sent by an employee. A nil StudentID addresses all students.
type RequestDraft struct {
	StudentID    *int64     `json:"studentId"`
	RequestType  string     `json:"requestType"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ActivityName string     `json:"activityName,omitempty"`
	ActivityCode string     `json:"activityCode,omitempty"`
	Deadline     *Timestamp `json:"deadline,omitempty"`
}

type SendRequestResult struct {
	Envelope
	Request EmployeeRequest `json:"request"`
}

type RequestsResult struct {
	Envelope
	Requests []EmployeeRequest `json:"requests"`
}

func (r *RequestsResult) applyDefaults() {
	if r.Requests == nil {
		r.Requests = []EmployeeRequest{}
	}
}

// ============================================================================
// Health
// ============================================================================

const (
	HealthStatusHealthy = "healthy"
	HealthStatusOffline = "offline"
)

// Health is reported directly, outside the envelope.
type Health struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp"`
}

func (h Health) Healthy() bool { return h.Status == HealthStatusHealthy }
