package entities

import "time"

// StageCode identifies one of the three fixed workflow phases.
type StageCode string

const (
	StageClaim   StageCode = "claim"
	StageRepair  StageCode = "repair"
	StageBilling StageCode = "billing"
)

// StepStatus is the checklist status of a single step.
type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in_progress"
	StepStatusCompleted  StepStatus = "completed"
	StepStatusSkipped    StepStatus = "skipped"
)

// Terminal reports whether the step no longer counts as open work.
func (s StepStatus) Terminal() bool {
	return s == StepStatusCompleted || s == StepStatusSkipped
}

// Valid reports whether the value belongs to the step status vocabulary.
func (s StepStatus) Valid() bool {
	switch s {
	case StepStatusPending, StepStatusInProgress, StepStatusCompleted, StepStatusSkipped:
		return true
	}
	return false
}

// Stage is one phase of the job workflow. Stage i+1 stays locked until
// stage i completes; exactly one stage is active at a time unless the job
// is finished.
type Stage struct {
	Code        StageCode  `json:"code"`
	Name        string     `json:"name"`
	OrderIndex  int        `json:"orderIndex"`
	Steps       []Step     `json:"steps"`
	IsLocked    bool       `json:"isLocked"`
	IsCompleted bool       `json:"isCompleted"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Open reports whether the stage accepts step mutations.
func (s Stage) Open() bool {
	return !s.IsLocked && !s.IsCompleted
}

// AllStepsDone reports whether every step reached a terminal status.
func (s Stage) AllStepsDone() bool {
	if len(s.Steps) == 0 {
		return false
	}
	for _, st := range s.Steps {
		if !st.Status.Terminal() {
			return false
		}
	}
	return true
}

// Step is a checklist item inside a stage. Its identity and skippability come
// from a fixed template; completed/in_progress require a named employee.
type Step struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	OrderIndex  int        `json:"orderIndex"`
	IsSkippable bool       `json:"isSkippable"`
	Status      StepStatus `json:"status"`
	EmployeeID  string     `json:"employeeId,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
