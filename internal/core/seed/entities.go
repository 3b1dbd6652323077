package seed

// The mock entity datasets the report records are derived from.

type employee struct {
	Code       string
	Name       string
	Email      string
	Role       string
	Department string
	Manager    string
	Active     bool
}

type client struct {
	Code           string
	Name           string
	Email          string
	Country        string
	Industry       string
	AccountManager string
	Active         bool
}

type project struct {
	Code    string
	Name    string
	Client  string
	Type    string
	Manager string
	Status  string
}

type task struct {
	Code     string
	Name     string
	Project  string
	Activity string
	Assignee string
	Priority string
	Status   string
}

var employees = []employee{
	{"EMP-001", "Olivia Bennett", "olivia.bennett@worklog.io", "Engineering Manager", "Engineering", "Marcus Hale", true},
	{"EMP-002", "Liam Carter", "liam.carter@worklog.io", "Backend Developer", "Engineering", "Olivia Bennett", true},
	{"EMP-003", "Sofia Alvarez", "sofia.alvarez@worklog.io", "Frontend Developer", "Engineering", "Olivia Bennett", true},
	{"EMP-004", "Noah Fischer", "noah.fischer@worklog.io", "QA Engineer", "Quality", "Olivia Bennett", true},
	{"EMP-005", "Amara Okafor", "amara.okafor@worklog.io", "Product Designer", "Design", "Hannah Weiss", true},
	{"EMP-006", "Hannah Weiss", "hannah.weiss@worklog.io", "Design Lead", "Design", "Marcus Hale", true},
	{"EMP-007", "Ethan Brooks", "ethan.brooks@worklog.io", "Account Manager", "Sales", "Priya Nair", true},
	{"EMP-008", "Priya Nair", "priya.nair@worklog.io", "Sales Director", "Sales", "Marcus Hale", true},
	{"EMP-009", "Lucas Moreau", "lucas.moreau@worklog.io", "DevOps Engineer", "Operations", "Olivia Bennett", false},
	{"EMP-010", "Marcus Hale", "marcus.hale@worklog.io", "Chief Operating Officer", "Management", "Marcus Hale", true},
}

var clients = []client{
	{"CL-001", "Northwind Logistics", "contact@northwind.example", "United States", "Logistics", "Ethan Brooks", true},
	{"CL-002", "Helios Energy", "hello@helios.example", "Germany", "Energy", "Priya Nair", true},
	{"CL-003", "Blue Fern Health", "info@bluefern.example", "Canada", "Healthcare", "Ethan Brooks", true},
	{"CL-004", "Quanta Retail", "ops@quanta.example", "United Kingdom", "Retail", "Priya Nair", false},
	{"CL-005", "Koru Finance", "team@koru.example", "New Zealand", "Finance", "Ethan Brooks", true},
	{"CL-006", "Atlas Build", "projects@atlasbuild.example", "Australia", "Construction", "Priya Nair", false},
}

var projects = []project{
	{"PRJ-001", "Fleet Tracker", "Northwind Logistics", "Fixed Price", "Olivia Bennett", "Active"},
	{"PRJ-002", "Grid Analytics", "Helios Energy", "Time & Material", "Olivia Bennett", "Active"},
	{"PRJ-003", "Patient Portal", "Blue Fern Health", "Fixed Price", "Hannah Weiss", "Completed"},
	{"PRJ-004", "Store Revamp", "Quanta Retail", "Time & Material", "Hannah Weiss", "On Hold"},
	{"PRJ-005", "Ledger Sync", "Koru Finance", "Retainer", "Olivia Bennett", "Active"},
	{"PRJ-006", "Site Planner", "Atlas Build", "Fixed Price", "Marcus Hale", "Inactive"},
	{"PRJ-007", "Route Optimizer", "Northwind Logistics", "Retainer", "Olivia Bennett", "Active"},
	{"PRJ-008", "Internal Tools", "Northwind Logistics", "Internal", "Marcus Hale", "Completed"},
}

var tasks = []task{
	{"TSK-001", "Design tracking dashboard", "Fleet Tracker", "Design", "Amara Okafor", "High", "Completed"},
	{"TSK-002", "Build GPS ingestion API", "Fleet Tracker", "Development", "Liam Carter", "Critical", "In progress"},
	{"TSK-003", "Meter data pipeline", "Grid Analytics", "Development", "Liam Carter", "High", "In progress"},
	{"TSK-004", "Usage heatmap", "Grid Analytics", "Development", "Sofia Alvarez", "Medium", "To Do"},
	{"TSK-005", "Accessibility audit", "Patient Portal", "Testing", "Noah Fischer", "Medium", "Completed"},
	{"TSK-006", "Checkout redesign", "Store Revamp", "Design", "Hannah Weiss", "Low", "On Hold"},
	{"TSK-007", "Bank feed connector", "Ledger Sync", "Development", "Liam Carter", "Critical", "To Do"},
	{"TSK-008", "Reconciliation tests", "Ledger Sync", "Testing", "Noah Fischer", "High", "To Do"},
	{"TSK-009", "Blueprint viewer", "Site Planner", "Development", "Sofia Alvarez", "Low", "On Hold"},
	{"TSK-010", "Solver benchmarks", "Route Optimizer", "Research", "Lucas Moreau", "Medium", "In progress"},
	{"TSK-011", "CI pipeline hardening", "Internal Tools", "DevOps", "Lucas Moreau", "High", "Completed"},
	{"TSK-012", "Client kickoff workshop", "Route Optimizer", "Meeting", "Ethan Brooks", "Low", "Completed"},
}
