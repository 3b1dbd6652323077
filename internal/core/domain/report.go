package domain

// Record is the read-only view every report row exposes to the generic
// list, filter and stats code.
type Record interface {
	RecordID() string
	// Value returns a field by its storage name. Values are string, float64 or int.
	Value(field string) (any, bool)
	StatusValue() string
}

// Person is a display identity with an avatar URL.
type Person struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

const (
	TimesheetApproved = "Approved"
	TimesheetPending  = "Pending for approval"
	TimesheetRejected = "Rejected"

	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusCompleted = "Completed"
	StatusOnHold    = "On Hold"

	TaskToDo       = "To Do"
	TaskInProgress = "In progress"

	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

var (
	TimesheetStatuses = []string{TimesheetApproved, TimesheetPending, TimesheetRejected}
	AccountStatuses   = []string{StatusActive, StatusInactive}
	ProjectStatuses   = []string{StatusActive, StatusInactive, StatusCompleted, StatusOnHold}
	TaskStatuses      = []string{TaskToDo, TaskInProgress, StatusCompleted, StatusOnHold}
	TaskPriorities    = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
)

// TimesheetReport is one submitted timesheet period.
type TimesheetReport struct {
	ID            string  `json:"id"`
	User          Person  `json:"user"`
	Approver      Person  `json:"approver"`
	Department    string  `json:"department"`
	DateRange     string  `json:"dateRange"`
	Status        string  `json:"status"`
	TotalHours    float64 `json:"totalHours"`
	SubmittedDate string  `json:"submittedDate"`
}

func (r TimesheetReport) RecordID() string    { return r.ID }
func (r TimesheetReport) StatusValue() string { return r.Status }

func (r TimesheetReport) Value(field string) (any, bool) {
	switch field {
	case "id":
		return r.ID, true
	case "user":
		return r.User.Name, true
	case "userAvatar":
		return r.User.Avatar, true
	case "approver":
		return r.Approver.Name, true
	case "approverAvatar":
		return r.Approver.Avatar, true
	case "department":
		return r.Department, true
	case "dateRange":
		return r.DateRange, true
	case "status":
		return r.Status, true
	case "totalHours":
		return r.TotalHours, true
	case "submittedDate":
		return r.SubmittedDate, r.SubmittedDate != ""
	}
	return nil, false
}

// UserReport summarises one employee's logged time.
type UserReport struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Avatar           string  `json:"avatar,omitempty"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	Department       string  `json:"department"`
	Manager          Person  `json:"manager"`
	Status           string  `json:"status"`
	TotalLoggedHours float64 `json:"totalLoggedHours"`
	AssignedProjects int     `json:"assignedProjects"`
}

func (r UserReport) RecordID() string    { return r.ID }
func (r UserReport) StatusValue() string { return r.Status }

func (r UserReport) Value(field string) (any, bool) {
	switch field {
	case "id":
		return r.ID, true
	case "code":
		return r.Code, true
	case "name":
		return r.Name, true
	case "avatar":
		return r.Avatar, true
	case "email":
		return r.Email, true
	case "role":
		return r.Role, true
	case "department":
		return r.Department, true
	case "manager":
		return r.Manager.Name, true
	case "managerAvatar":
		return r.Manager.Avatar, true
	case "status":
		return r.Status, true
	case "totalLoggedHours":
		return r.TotalLoggedHours, true
	case "assignedProjects":
		return r.AssignedProjects, true
	}
	return nil, false
}

// ClientReport summarises one client account.
type ClientReport struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Country        string  `json:"country"`
	Industry       string  `json:"industry"`
	ProjectCount   int     `json:"projectCount"`
	AccountManager Person  `json:"accountManager"`
	Status         string  `json:"status"`
	OnboardingDate string  `json:"onboardingDate"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

func (r ClientReport) RecordID() string    { return r.ID }
func (r ClientReport) StatusValue() string { return r.Status }

func (r ClientReport) Value(field string) (any, bool) {
	switch field {
	case "id":
		return r.ID, true
	case "code":
		return r.Code, true
	case "name":
		return r.Name, true
	case "email":
		return r.Email, true
	case "country":
		return r.Country, true
	case "industry":
		return r.Industry, true
	case "projectCount":
		return r.ProjectCount, true
	case "accountManager":
		return r.AccountManager.Name, true
	case "accountManagerAvatar":
		return r.AccountManager.Avatar, true
	case "status":
		return r.Status, true
	case "onboardingDate":
		return r.OnboardingDate, r.OnboardingDate != ""
	case "totalRevenue":
		return r.TotalRevenue, true
	}
	return nil, false
}

// ProjectReport summarises one project.
type ProjectReport struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	ClientName     string  `json:"clientName"`
	Type           string  `json:"type"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	ProjectManager Person  `json:"projectManager"`
	Status         string  `json:"status"`
	TotalHours     float64 `json:"totalHours"`
	TeamSize       int     `json:"teamSize"`
}

func (r ProjectReport) RecordID() string    { return r.ID }
func (r ProjectReport) StatusValue() string { return r.Status }

func (r ProjectReport) Value(field string) (any, bool) {
	switch field {
	case "id":
		return r.ID, true
	case "code":
		return r.Code, true
	case "name":
		return r.Name, true
	case "clientName":
		return r.ClientName, true
	case "type":
		return r.Type, true
	case "startDate":
		return r.StartDate, r.StartDate != ""
	case "endDate":
		return r.EndDate, r.EndDate != ""
	case "projectManager":
		return r.ProjectManager.Name, true
	case "projectManagerAvatar":
		return r.ProjectManager.Avatar, true
	case "status":
		return r.Status, true
	case "totalHours":
		return r.TotalHours, true
	case "teamSize":
		return r.TeamSize, true
	}
	return nil, false
}

// TaskReport summarises one task and the hours booked against it.
type TaskReport struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	ProjectName string  `json:"projectName"`
	Activity    string  `json:"activity"`
	Assignee    Person  `json:"assignee"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     string  `json:"dueDate"`
	HoursLogged float64 `json:"hoursLogged"`
}

func (r TaskReport) RecordID() string    { return r.ID }
func (r TaskReport) StatusValue() string { return r.Status }

func (r TaskReport) Value(field string) (any, bool) {
	switch field {
	case "id":
		return r.ID, true
	case "code":
		return r.Code, true
	case "name":
		return r.Name, true
	case "projectName":
		return r.ProjectName, true
	case "activity":
		return r.Activity, true
	case "assignee":
		return r.Assignee.Name, true
	case "assigneeAvatar":
		return r.Assignee.Avatar, true
	case "priority":
		return r.Priority, true
	case "status":
		return r.Status, true
	case "dueDate":
		return r.DueDate, r.DueDate != ""
	case "hoursLogged":
		return r.HoursLogged, true
	}
	return nil, false
}
