package model

// Step names the orchestrator steps in execution order.
type Step string

const (
	StepCreateRepo    Step = "create-repository"
	StepTopics        Step = "replace-topics"
	StepLabels        Step = "create-labels"
	StepWebhook       Step = "register-webhook"
	StepCollaborators Step = "assign-collaborators"
	StepProtection    Step = "protect-branch"
	StepFiles         Step = "commit-boilerplate"
	StepSecrets       Step = "seed-secrets"
	StepNotify        Step = "notify"
	StepAudit         Step = "audit-log"
)

type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepSkipped StepStatus = "skipped"
	StepFailed  StepStatus = "failed"
)

// StepResult is the human-readable status of a single step.
type StepResult struct {
	Step   Step
	Status StepStatus
	Note   string
}

// ProvisioningResult is created at run end and discarded after being
// reported to the caller.
type ProvisioningResult struct {
	Succeeded bool
	Steps     []StepResult
}

func (x *ProvisioningResult) Record(step Step, status StepStatus, note string) {
	x.Steps = append(x.Steps, StepResult{Step: step, Status: status, Note: note})
}

// StatusOf returns the recorded status of a step, or empty if the run
// aborted before reaching it.
func (x *ProvisioningResult) StatusOf(step Step) StepStatus {
	for _, s := range x.Steps {
		if s.Step == step {
			return s.Status
		}
	}
	return ""
}
