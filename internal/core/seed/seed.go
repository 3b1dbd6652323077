// Package seed builds the report records a store is populated with the first
// time a category is read. Records are derived from fixed entity datasets;
// numeric fields are drawn once from the generator's random source.
package seed

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/worklog/report-dashboard/internal/core/domain"
)

const timesheetWeeks = 3

// Dataset holds the generated records of every category.
type Dataset struct {
	records map[domain.Category][]domain.Record
}

// Generate derives the dataset relative to now. The same seed and now always
// produce the same records.
func Generate(now time.Time, seed uint64) *Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	day := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())

	return &Dataset{records: map[domain.Category][]domain.Record{
		domain.CategoryTimesheet: timesheets(day, rng),
		domain.CategoryUser:      users(rng),
		domain.CategoryClient:    clientReports(day, rng),
		domain.CategoryProject:   projectReports(day, rng),
		domain.CategoryTask:      taskReports(day, rng),
	}}
}

// Records returns a copy of the category's seed records.
func (d *Dataset) Records(c domain.Category) []domain.Record {
	return slices.Clone(d.records[c])
}

func person(name string) domain.Person {
	return domain.Person{Name: name, Avatar: avatar(name)}
}

func avatar(name string) string {
	return "/avatars/" + strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".png"
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

func iso(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func timesheets(day time.Time, rng *rand.Rand) []domain.Record {
	statuses := domain.TimesheetStatuses
	sinceMonday := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -sinceMonday)

	var out []domain.Record
	n := 0
	for w := 1; w <= timesheetWeeks; w++ {
		start := weekStart.AddDate(0, 0, -7*w)
		end := start.AddDate(0, 0, 4)
		for _, e := range employees[:8] {
			n++
			out = append(out, domain.TimesheetReport{
				ID:            fmt.Sprintf("TS-%03d", n),
				User:          person(e.Name),
				Approver:      person(e.Manager),
				Department:    e.Department,
				DateRange:     start.Format("Jan 02") + " - " + end.Format("Jan 02, 2006"),
				Status:        statuses[(n+w)%len(statuses)],
				TotalHours:    round1(32 + rng.Float64()*12),
				SubmittedDate: iso(end.AddDate(0, 0, 1)),
			})
		}
	}
	return out
}

func users(rng *rand.Rand) []domain.Record {
	out := make([]domain.Record, 0, len(employees))
	for i, e := range employees {
		status := domain.StatusActive
		if !e.Active {
			status = domain.StatusInactive
		}
		out = append(out, domain.UserReport{
			ID:               fmt.Sprintf("USR-%03d", i+1),
			Code:             e.Code,
			Name:             e.Name,
			Avatar:           avatar(e.Name),
			Email:            e.Email,
			Role:             e.Role,
			Department:       e.Department,
			Manager:          person(e.Manager),
			Status:           status,
			TotalLoggedHours: round1(80 + rng.Float64()*120),
			AssignedProjects: assignedProjects(e.Name),
		})
	}
	return out
}

func assignedProjects(name string) int {
	seen := map[string]struct{}{}
	for _, t := range tasks {
		if t.Assignee == name {
			seen[t.Project] = struct{}{}
		}
	}
	for _, p := range projects {
		if p.Manager == name {
			seen[p.Name] = struct{}{}
		}
	}
	return len(seen)
}

func clientReports(day time.Time, rng *rand.Rand) []domain.Record {
	out := make([]domain.Record, 0, len(clients))
	for i, c := range clients {
		count := 0
		for _, p := range projects {
			if p.Client == c.Name {
				count++
			}
		}
		status := domain.StatusActive
		if !c.Active {
			status = domain.StatusInactive
		}
		out = append(out, domain.ClientReport{
			ID:             fmt.Sprintf("CLR-%03d", i+1),
			Code:           c.Code,
			Name:           c.Name,
			Email:          c.Email,
			Country:        c.Country,
			Industry:       c.Industry,
			ProjectCount:   count,
			AccountManager: person(c.AccountManager),
			Status:         status,
			OnboardingDate: iso(day.AddDate(0, 0, -(3 + i*37))),
			TotalRevenue:   float64(int(20000+rng.Float64()*180000)) + 0.5*float64(i%2),
		})
	}
	return out
}

func projectReports(day time.Time, rng *rand.Rand) []domain.Record {
	out := make([]domain.Record, 0, len(projects))
	for i, p := range projects {
		start := day.AddDate(0, 0, -(2 + i*21))
		out = append(out, domain.ProjectReport{
			ID:             fmt.Sprintf("PRR-%03d", i+1),
			Code:           p.Code,
			Name:           p.Name,
			ClientName:     p.Client,
			Type:           p.Type,
			StartDate:      iso(start),
			EndDate:        iso(start.AddDate(0, 3, 0)),
			ProjectManager: person(p.Manager),
			Status:         p.Status,
			TotalHours:     round1(120 + rng.Float64()*900),
			TeamSize:       3 + rng.IntN(10),
		})
	}
	return out
}

func taskReports(day time.Time, rng *rand.Rand) []domain.Record {
	out := make([]domain.Record, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, domain.TaskReport{
			ID:          fmt.Sprintf("TKR-%03d", i+1),
			Code:        t.Code,
			Name:        t.Name,
			ProjectName: t.Project,
			Activity:    t.Activity,
			Assignee:    person(t.Assignee),
			Priority:    t.Priority,
			Status:      t.Status,
			DueDate:     iso(day.AddDate(0, 0, i*5-30)),
			HoursLogged: round1(rng.Float64() * 60),
		})
	}
	return out
}
