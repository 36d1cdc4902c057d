package renewal

import "sort"

// SortTasks orders tasks by status (in-progress, open, done) then priority
// (urgent, high, medium, low). Ties keep their input order.
func SortTasks(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := taskStatusRank[sorted[i].Status], taskStatusRank[sorted[j].Status]
		if si != sj {
			return si < sj
		}
		return priorityRank[sorted[i].Priority] < priorityRank[sorted[j].Priority]
	})
	return sorted
}

// SortTenants orders tenants by agreement status (signed, negotiating, waiting,
// refused). Unknown statuses sort last; ties keep their input order.
func SortTenants(tenants []Tenant) []Tenant {
	rank := func(s AgreementStatus) int {
		if r, ok := agreementRank[s]; ok {
			return r
		}
		return len(agreementRank)
	}
	sorted := make([]Tenant, len(tenants))
	copy(sorted, tenants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i].AgreementStatus) < rank(sorted[j].AgreementStatus)
	})
	return sorted
}
