package tasks

// Priority is the urgency bucket assigned to an extracted task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	// Unassigned is used when no name is found in the sentence.
	Unassigned = "Unassigned"
	// NoDeadline is used when no deadline pattern matches.
	NoDeadline = "No deadline"
	// MaxTasks caps the output once more sentences qualify.
	MaxTasks = 10
)

// Task is a single action item found in a transcript.
type Task struct {
	Description string   `json:"description"`
	AssignedTo  string   `json:"assignedTo"`
	Deadline    string   `json:"deadline"`
	Priority    Priority `json:"priority"`
}
