package models

import "fmt"

// TaskStore owns the ordered task collection and is the only place it is
// mutated. Every operation either fully applies or leaves the list untouched.
//
// TaskStore is not safe for concurrent use; callers serialize access.
type TaskStore struct {
	tasks []Task
}

// NewTaskStore creates a store seeded with a copy of tasks.
func NewTaskStore(tasks []Task) *TaskStore {
	s := &TaskStore{tasks: make([]Task, len(tasks))}
	copy(s.tasks, tasks)
	return s
}

// Add appends a new, not completed task and returns its index.
// The name is stored as given; it is only checked for emptiness.
func (s *TaskStore) Add(name string) (int, error) {
	task := Task{Name: name}
	if err := task.Validate(); err != nil {
		return -1, err
	}

	s.tasks = append(s.tasks, task)
	return len(s.tasks) - 1, nil
}

// ToggleComplete flips the completion flag of the task at index.
func (s *TaskStore) ToggleComplete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	s.tasks[index].Completed = !s.tasks[index].Completed
	return nil
}

// Remove deletes the task at index. Tasks after it move one position left.
func (s *TaskStore) Remove(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return nil
}

// Clear removes every task.
func (s *TaskStore) Clear() {
	s.tasks = s.tasks[:0]
}

// List returns a snapshot of the tasks in display order.
func (s *TaskStore) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

func (s *TaskStore) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.tasks))
	}
	return nil
}
