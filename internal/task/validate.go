package task

import "taskpad/internal/model"

// Problem reports one missing field on a draft. Problems are advisory:
// the registry accepts any draft, and the create endpoint returns them
// as warnings next to the built task instead of rejecting it.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validate checks the three form fields for presence. An empty result
// means every field was filled in.
func Validate(d model.Draft) []Problem {
	var out []Problem
	if d.Title == "" {
		out = append(out, Problem{Field: "title", Reason: "not set"})
	}
	if d.Description == "" {
		out = append(out, Problem{Field: "description", Reason: "not set"})
	}
	if d.DueDate == nil {
		out = append(out, Problem{Field: "dueDate", Reason: "not set"})
	}
	return out
}
