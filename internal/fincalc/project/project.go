package project

import (
	"fmt"
	"time"

	"FinPlanSaas/internal/fincalc/cashflow"
	"FinPlanSaas/internal/fincalc/numeric"
)

// TaskStatus enumerates the lifecycle of a project task.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
	StatusBlocked    TaskStatus = "blocked"
)

// Task is one unit of project work. DependsOn holds the ids of tasks that
// must complete first.
type Task struct {
	ID           string     `json:"id"`
	DependsOn    []string   `json:"depends_on"`
	Status       TaskStatus `json:"status"`
	PlannedHours float64    `json:"planned_hours"`
	ActualHours  float64    `json:"actual_hours"`
	Completion   float64    `json:"completion"`
}

// Phase groups tasks under a named stage of the project.
type Phase struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Project is the snapshot the analytics and validator operate on.
type Project struct {
	Name        string    `json:"name"`
	Budget      float64   `json:"budget"`
	ActualSpend float64   `json:"actual_spend"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Phases      []Phase   `json:"phases"`
}

// allTasks flattens every phase.
func (p Project) allTasks() []Task {
	var tasks []Task
	for _, ph := range p.Phases {
		tasks = append(tasks, ph.Tasks...)
	}
	return tasks
}

// Progress is the unweighted mean completion percentage of the tasks.
func Progress(tasks []Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range tasks {
		total += numeric.Clamp(t.Completion, 0, 100)
	}
	return total / float64(len(tasks))
}

// PhaseProgress reports each phase's progress in order.
func PhaseProgress(p Project) map[string]float64 {
	out := make(map[string]float64, len(p.Phases))
	for _, ph := range p.Phases {
		out[ph.Name] = Progress(ph.Tasks)
	}
	return out
}

// OverallProgress is the unweighted mean completion across all tasks.
func OverallProgress(p Project) float64 {
	return Progress(p.allTasks())
}

// ResourceSummary aggregates planned against actual effort.
type ResourceSummary struct {
	PlannedHours  float64 `json:"planned_hours"`
	ActualHours   float64 `json:"actual_hours"`
	HoursVariance float64 `json:"hours_variance"`
}

// Resources totals the task effort for a project.
func Resources(p Project) ResourceSummary {
	var planned, actual float64
	for _, t := range p.allTasks() {
		planned += t.PlannedHours
		actual += t.ActualHours
	}
	return ResourceSummary{
		PlannedHours:  planned,
		ActualHours:   actual,
		HoursVariance: cashflow.Variance(actual, planned),
	}
}

// CostSummary is the project-level budget variance picture.
type CostSummary struct {
	Budgeted        float64  `json:"budgeted"`
	Actual          float64  `json:"actual"`
	Variance        float64  `json:"variance"`
	VariancePercent *float64 `json:"variance_percent,omitempty"`
	BurnRate        float64  `json:"burn_rate"`
}

// Cost aggregates spend against budget, with burn rate over elapsed months.
func Cost(p Project, monthsElapsed int) CostSummary {
	summary := CostSummary{
		Budgeted: p.Budget,
		Actual:   p.ActualSpend,
		Variance: cashflow.Variance(p.ActualSpend, p.Budget),
		BurnRate: numeric.RoundCents(cashflow.BurnRate(p.ActualSpend, monthsElapsed)),
	}
	if pct, ok := cashflow.VariancePercent(p.ActualSpend, p.Budget); ok {
		rounded := numeric.RoundTo(pct, 2)
		summary.VariancePercent = &rounded
	}
	return summary
}

// HasCycle reports whether the task dependency graph contains a cycle. It
// walks depth-first from every task keeping a visited set and the current
// path; a dependency back into the path is a cycle. Dependencies on unknown
// task ids are ignored.
func HasCycle(tasks []Task) bool {
	deps := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		deps[t.ID] = t.DependsOn
	}
	visited := make(map[string]bool, len(tasks))
	path := make(map[string]bool, len(tasks))

	var visit func(id string) bool
	visit = func(id string) bool {
		if path[id] {
			return true
		}
		if visited[id] {
			return false
		}
		visited[id] = true
		path[id] = true
		for _, dep := range deps[id] {
			if _, known := deps[dep]; !known {
				continue
			}
			if visit(dep) {
				return true
			}
		}
		path[id] = false
		return false
	}

	for _, t := range tasks {
		if visit(t.ID) {
			return true
		}
	}
	return false
}

// Validate checks the structural rules for a project and returns every
// failure as a human-readable message. An empty slice means valid; the
// caller decides whether any failure rejects the project.
func Validate(p Project) []string {
	var problems []string
	if p.Budget <= 0 {
		problems = append(problems, fmt.Sprintf("project %q must have a positive budget", p.Name))
	}
	if !p.EndDate.After(p.StartDate) {
		problems = append(problems, fmt.Sprintf("project %q end date must be after its start date", p.Name))
	}
	if len(p.Phases) == 0 {
		problems = append(problems, fmt.Sprintf("project %q must have at least one phase", p.Name))
	}
	if HasCycle(p.allTasks()) {
		problems = append(problems, fmt.Sprintf("project %q has a circular task dependency", p.Name))
	}
	return problems
}
