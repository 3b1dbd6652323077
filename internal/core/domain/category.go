package domain

import "strings"

// Category identifies one report tab and the storage blob backing it.
type Category string

const (
	CategoryTimesheet Category = "timesheet"
	CategoryUser      Category = "user"
	CategoryClient    Category = "client"
	CategoryProject   Category = "project"
	CategoryTask      Category = "task"
)

// Categories lists every category in tab order.
var Categories = []Category{
	CategoryTimesheet,
	CategoryUser,
	CategoryClient,
	CategoryProject,
	CategoryTask,
}

// storageKeys are the fixed blob keys the dashboard has always used.
var storageKeys = map[Category]string{
	CategoryTimesheet: "timesheetReports",
	CategoryUser:      "userReports",
	CategoryClient:    "clientReports",
	CategoryProject:   "projectReports",
	CategoryTask:      "taskReports",
}

// ParseCategory accepts the category name in any case, with or without a
// trailing "s" ("tasks" == "task").
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if _, ok := storageKeys[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// StorageKey returns the blob key for the category.
func (c Category) StorageKey() string {
	return storageKeys[c]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := storageKeys[c]
	return ok
}
