package renewal

import "strings"

// ProjectFilter selects projects. Zero-value fields match everything.
type ProjectFilter struct {
	Stage Stage
	Type  string
	Query string
}

// TaskFilter selects tasks. Zero-value fields match everything.
type TaskFilter struct {
	Status   TaskStatus
	Category string
}

// FilterProjects returns the projects matching every set filter field, in input
// order. The free-text query matches case-insensitively against name, address,
// city and developer.
func FilterProjects(projects []Project, f ProjectFilter) []Project {
	query := strings.ToLower(f.Query)
	matched := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.Stage != "" && p.Stage != f.Stage {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if query != "" && !matchesQuery(query, p.Name, p.Address, p.City, p.Developer) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// FilterTasks returns the tasks matching every set filter field, in input order.
func FilterTasks(tasks []Task, f TaskFilter) []Task {
	matched := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func matchesQuery(lowerQuery string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
