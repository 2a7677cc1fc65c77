package entity

type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      bool   `json:"status"` // true when done
}

// TaskRequest is the payload accepted by POST /tasks and PUT /tasks/:id.
type TaskRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

func NewTask(req TaskRequest) *Task {
	t := &Task{}
	t.Replace(req)
	return t
}

// Replace overwrites every mutable field of the task.
func (t *Task) Replace(req TaskRequest) {
	t.Title = req.Title
	t.Description = req.Description
	t.Status = req.Status
}
