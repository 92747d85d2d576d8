package models

import (
	"errors"
	"testing"
)

func TestTaskValidation_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name:    "empty name should fail",
			task:    Task{Name: ""},
			wantErr: true,
		},
		{
			name:    "whitespace name should fail",
			task:    Task{Name: "   "},
			wantErr: true,
		},
		{
			name:    "tabs and newlines should fail",
			task:    Task{Name: "\t\n"},
			wantErr: true,
		},
		{
			name:    "invalid utf-8 should fail",
			task:    Task{Name: "caf\xe9"},
			wantErr: true,
		},
		{
			name:    "valid name should pass",
			task:    Task{Name: "Buy milk"},
			wantErr: false,
		},
		{
			name:    "padded name should pass",
			task:    Task{Name: "  Buy milk  "},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestTaskListValidation(t *testing.T) {
	valid := TaskList{Tasks: []Task{{Name: "Milk"}, {Name: "Eggs", Completed: true}}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid list, got error: %v", err)
	}

	invalid := TaskList{Tasks: []Task{{Name: "Milk"}, {Name: " "}}}
	if err := invalid.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	empty := TaskList{}
	if err := empty.Validate(); err != nil {
		t.Fatalf("expected empty list to be valid, got error: %v", err)
	}
}
