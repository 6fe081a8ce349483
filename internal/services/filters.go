package services

import (
	"errors"
	"strings"
	"time"

	"github.com/yukikurage/task-assignment-api/internal/repository"
	"github.com/yukikurage/task-assignment-api/internal/validation"
)

var errUnparseableDate = errors.New("unparseable date")

// createdAtLayouts are tried in order; values without a zone are read as UTC.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// BuildTaskFilter turns validated list parameters into a store filter.
// Clauses are ANDed; no clause means every task.
func BuildTaskFilter(q validation.ListQuery) (repository.TaskFilter, error) {
	var filter repository.TaskFilter

	if q.Status != nil && *q.Status != "" {
		filter.Status = q.Status
	}
	if q.Priority != nil && *q.Priority != "" {
		filter.Priority = q.Priority
	}
	if q.CreatedAt != nil && *q.CreatedAt != "" {
		from, err := parseCreatedAt(*q.CreatedAt)
		if err != nil {
			return repository.TaskFilter{}, err
		}
		filter.CreatedFrom = &from
	}

	return filter, nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errUnparseableDate
}
