package catalog

import (
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/listview"
)

var registry = map[domain.Category]*Descriptor{
	domain.CategoryTimesheet: {
		Category:  domain.CategoryTimesheet,
		Title:     "Timesheet Reports",
		DateField: "submittedDate",
		NameField: "user",
		Columns: []listview.Column{
			{Header: "User", Field: "user", Sortable: true},
			{Header: "Department", Field: "department", Sortable: true},
			{Header: "Date Range", Field: "dateRange"},
			{Header: "Status", Field: "status", Sortable: true},
			{Header: "Total Hours", Field: "totalHours", Render: hours("totalHours"), Sortable: true},
			{Header: "Approver", Field: "approver", Sortable: true},
			{Header: "Submitted", Field: "submittedDate", Render: date("submittedDate"), Sortable: true},
		},
		Filters: []FilterField{
			{Field: "status", Label: "Status", Fixed: domain.TimesheetStatuses},
			{Field: "department", Label: "Department"},
			{Field: "approver", Label: "Approver"},
		},
		Buckets: map[string]domain.Bucket{
			domain.TimesheetApproved: domain.BucketActive,
			domain.TimesheetRejected: domain.BucketInactive,
			domain.TimesheetPending:  domain.BucketPending,
		},
		decode: decodeAs[domain.TimesheetReport],
	},
	domain.CategoryUser: {
		Category:  domain.CategoryUser,
		Title:     "User Reports",
		NameField: "name",
		Columns: []listview.Column{
			{Header: "Code", Field: "code"},
			{Header: "Name", Field: "name"},
			{Header: "Email", Field: "email"},
			{Header: "Role", Field: "role"},
			{Header: "Department", Field: "department"},
			{Header: "Manager", Field: "manager"},
			{Header: "Status", Field: "status"},
			{Header: "Logged Hours", Field: "totalLoggedHours", Render: hours("totalLoggedHours")},
			{Header: "Projects", Field: "assignedProjects"},
		},
		Filters: []FilterField{
			{Field: "role", Label: "Role"},
			{Field: "department", Label: "Department"},
			{Field: "status", Label: "Status", Fixed: domain.AccountStatuses},
			{Field: "manager", Label: "Manager"},
		},
		Buckets: map[string]domain.Bucket{
			domain.StatusActive:   domain.BucketActive,
			domain.StatusInactive: domain.BucketInactive,
		},
		decode: decodeAs[domain.UserReport],
	},
	domain.CategoryClient: {
		Category:  domain.CategoryClient,
		Title:     "Client Reports",
		DateField: "onboardingDate",
		NameField: "name",
		Columns: []listview.Column{
			{Header: "Code", Field: "code"},
			{Header: "Client", Field: "name"},
			{Header: "Email", Field: "email"},
			{Header: "Country", Field: "country"},
			{Header: "Industry", Field: "industry"},
			{Header: "Projects", Field: "projectCount"},
			{Header: "Account Manager", Field: "accountManager"},
			{Header: "Status", Field: "status"},
			{Header: "Onboarded", Field: "onboardingDate", Render: date("onboardingDate")},
			{Header: "Revenue", Field: "totalRevenue", Render: money("totalRevenue")},
		},
		Filters: []FilterField{
			{Field: "country", Label: "Country"},
			{Field: "industry", Label: "Industry"},
			{Field: "status", Label: "Status", Fixed: domain.AccountStatuses},
			{Field: "accountManager", Label: "Account Manager"},
		},
		Buckets: map[string]domain.Bucket{
			domain.StatusActive:   domain.BucketActive,
			domain.StatusInactive: domain.BucketInactive,
		},
		decode: decodeAs[domain.ClientReport],
	},
	domain.CategoryProject: {
		Category:  domain.CategoryProject,
		Title:     "Project Reports",
		DateField: "startDate",
		NameField: "name",
		Columns: []listview.Column{
			{Header: "Code", Field: "code"},
			{Header: "Project", Field: "name"},
			{Header: "Client", Field: "clientName"},
			{Header: "Type", Field: "type"},
			{Header: "Start", Field: "startDate", Render: date("startDate")},
			{Header: "End", Field: "endDate", Render: date("endDate")},
			{Header: "Manager", Field: "projectManager"},
			{Header: "Status", Field: "status"},
			{Header: "Total Hours", Field: "totalHours", Render: hours("totalHours")},
			{Header: "Team", Field: "teamSize"},
		},
		Filters: []FilterField{
			{Field: "type", Label: "Type"},
			{Field: "status", Label: "Status", Fixed: domain.ProjectStatuses},
			{Field: "clientName", Label: "Client"},
			{Field: "projectManager", Label: "Manager"},
		},
		Buckets: map[string]domain.Bucket{
			domain.StatusActive:    domain.BucketActive,
			domain.StatusInactive:  domain.BucketInactive,
			domain.StatusCompleted: domain.BucketCompleted,
			domain.StatusOnHold:    domain.BucketPending,
		},
		decode: decodeAs[domain.ProjectReport],
	},
	domain.CategoryTask: {
		Category:  domain.CategoryTask,
		Title:     "Task Reports",
		DateField: "dueDate",
		NameField: "name",
		Columns: []listview.Column{
			{Header: "Code", Field: "code"},
			{Header: "Task", Field: "name"},
			{Header: "Project", Field: "projectName"},
			{Header: "Activity", Field: "activity"},
			{Header: "Assignee", Field: "assignee"},
			{Header: "Priority", Field: "priority"},
			{Header: "Status", Field: "status"},
			{Header: "Due", Field: "dueDate", Render: date("dueDate")},
			{Header: "Hours", Field: "hoursLogged", Render: hours("hoursLogged")},
		},
		Filters: []FilterField{
			{Field: "priority", Label: "Priority", Fixed: domain.TaskPriorities},
			{Field: "status", Label: "Status", Fixed: domain.TaskStatuses},
			{Field: "activity", Label: "Activity"},
			{Field: "projectName", Label: "Project"},
			{Field: "assignee", Label: "Assignee"},
		},
		Buckets: map[string]domain.Bucket{
			domain.TaskInProgress:  domain.BucketActive,
			domain.StatusOnHold:    domain.BucketInactive,
			domain.StatusCompleted: domain.BucketCompleted,
			domain.TaskToDo:        domain.BucketPending,
		},
		decode: decodeAs[domain.TaskReport],
	},
}
