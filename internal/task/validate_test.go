package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskpad/internal/model"
)

func TestValidate_AllFieldsPresent(t *testing.T) {
	due := time.Now()
	problems := Validate(model.Draft{
		Title:       "pay bills",
		Description: "electric + water",
		DueDate:     &due,
	})

	assert.Empty(t, problems)
}

func TestValidate_ReportsEachMissingField(t *testing.T) {
	problems := Validate(model.Draft{})

	fields := make([]string, 0, len(problems))
	for _, p := range problems {
		fields = append(fields, p.Field)
	}
	assert.Equal(t, []string{"title", "description", "dueDate"}, fields)
}

func TestValidate_PartialDraft(t *testing.T) {
	problems := Validate(model.Draft{Title: "only a title"})

	assert.Len(t, problems, 2)
	for _, p := range problems {
		assert.NotEqual(t, "title", p.Field)
	}
}
