// internal/domain/homework/homework.go
package homework

import (
	"fmt"
)

// Status is the review state reported by the Practicum API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known review status to the text shown to the student.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Homework is a single submission as returned by the review API.
type Homework struct {
	Name   string
	Status Status
}

// Verdict returns the human-readable verdict for a status.
func Verdict(status Status) (string, error) {
	verdict, ok := verdicts[status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(status))
	}
	return verdict, nil
}

// StatusMessage formats the notification sent when a homework changes status.
func StatusMessage(hw Homework) (string, error) {
	verdict, err := Verdict(hw.Status)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), nil
}
