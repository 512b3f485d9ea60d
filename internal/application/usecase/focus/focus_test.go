package focus

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/life-manager/backend/internal/domain/entity"
	domainerror "github.com/life-manager/backend/internal/domain/error"
)

type memoryTaskRepo struct {
	tasks   map[uuid.UUID]*entity.FocusTask
	order   []uuid.UUID
	updates int
}

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: map[uuid.UUID]*entity.FocusTask{}}
}

func (r *memoryTaskRepo) Create(_ context.Context, t *entity.FocusTask) error {
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *memoryTaskRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*entity.FocusTask, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, domainerror.ErrTaskNotFound
	}
	return t, nil
}

func (r *memoryTaskRepo) FindByUser(_ context.Context, userID uuid.UUID, date *time.Time) ([]*entity.FocusTask, error) {
	var out []*entity.FocusTask
	for i := len(r.order) - 1; i >= 0; i-- {
		t, ok := r.tasks[r.order[i]]
		if !ok || t.UserID != userID {
			continue
		}
		if date != nil && t.IsOnCalendar() && !t.ScheduledDate.Equal(*date) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memoryTaskRepo) Update(_ context.Context, t *entity.FocusTask) error {
	r.updates++
	r.tasks[t.ID] = t
	return nil
}

func (r *memoryTaskRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func validInput(userID uuid.UUID) CreateTaskInput {
	return CreateTaskInput{
		UserID:           userID,
		Title:            "Write report",
		Area:             entity.TaskAreaWork,
		Priority:         entity.TaskPriorityHigh,
		EnergyType:       entity.EnergyTypeDeep,
		PomodoroEstimate: 3,
	}
}

func assertTaskCode(t *testing.T, err error, want domainerror.TaskErrorCode) {
	t.Helper()
	var taskErr *domainerror.TaskError
	if !errors.As(err, &taskErr) {
		t.Fatalf("expected TaskError, got %v", err)
	}
	if taskErr.Code != want {
		t.Errorf("code = %s, want %s", taskErr.Code, want)
	}
}

func TestCreateTask(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		mutate func(in *CreateTaskInput)
		want   domainerror.TaskErrorCode
	}{
		{"empty title", func(in *CreateTaskInput) { in.Title = "   " }, domainerror.ErrCodeInvalidTaskTitle},
		{"long title", func(in *CreateTaskInput) { in.Title = strings.Repeat("a", 201) }, domainerror.ErrCodeInvalidTaskTitle},
		{"bad area", func(in *CreateTaskInput) { in.Area = "leisure" }, domainerror.ErrCodeInvalidTaskArea},
		{"bad priority", func(in *CreateTaskInput) { in.Priority = "urgent" }, domainerror.ErrCodeInvalidTaskPriority},
		{"bad energy", func(in *CreateTaskInput) { in.EnergyType = "medium" }, domainerror.ErrCodeInvalidEnergyType},
		{"zero pomodoros", func(in *CreateTaskInput) { in.PomodoroEstimate = 0 }, domainerror.ErrCodeInvalidPomodoros},
		{"too many pomodoros", func(in *CreateTaskInput) { in.PomodoroEstimate = 13 }, domainerror.ErrCodeInvalidPomodoros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryTaskRepo()
			in := validInput(userID)
			tt.mutate(&in)

			_, err := NewCreateTaskUseCase(repo, nil).Execute(context.Background(), in)
			assertTaskCode(t, err, tt.want)
			if len(repo.tasks) != 0 {
				t.Errorf("expected no task stored, got %d", len(repo.tasks))
			}
		})
	}

	t.Run("valid task lands in inbox", func(t *testing.T) {
		repo := newMemoryTaskRepo()
		in := validInput(userID)
		in.Title = strings.Repeat("á", 200)

		out, err := NewCreateTaskUseCase(repo, nil).Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.TaskStatusInbox {
			t.Errorf("status = %s, want inbox", out.Status)
		}
		if out.ScheduledDate != nil || out.ScheduledTime != nil {
			t.Error("inbox task must not carry a schedule")
		}
	})
}

func TestScheduleLifecycle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newMemoryTaskRepo()

	created, err := NewCreateTaskUseCase(repo, nil).Execute(ctx, validInput(userID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = NewToggleTaskUseCase(repo, nil).Execute(ctx, userID, created.ID)
	assertTaskCode(t, err, domainerror.ErrCodeTaskNotScheduled)

	scheduled, err := NewScheduleTaskUseCase(repo, nil).Execute(ctx, ScheduleTaskInput{
		UserID: userID, TaskID: created.ID, Date: "2024-05-10", Target: "slot-9",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if scheduled.Status != entity.TaskStatusScheduled {
		t.Errorf("status = %s, want scheduled", scheduled.Status)
	}
	if scheduled.ScheduledTime == nil || *scheduled.ScheduledTime != "09:00:00" {
		t.Errorf("scheduled time = %v, want 09:00:00", scheduled.ScheduledTime)
	}
	if scheduled.ScheduledDate == nil || *scheduled.ScheduledDate != "2024-05-10" {
		t.Errorf("scheduled date = %v, want 2024-05-10", scheduled.ScheduledDate)
	}

	toggled, err := NewToggleTaskUseCase(repo, nil).Execute(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Status != entity.TaskStatusCompleted {
		t.Errorf("status = %s, want completed", toggled.Status)
	}

	toggled, err = NewToggleTaskUseCase(repo, nil).Execute(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if toggled.Status != entity.TaskStatusScheduled {
		t.Errorf("status = %s, want scheduled", toggled.Status)
	}

	unscheduled, err := NewUnscheduleTaskUseCase(repo, nil).Execute(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("unschedule: %v", err)
	}
	if unscheduled.Status != entity.TaskStatusInbox || unscheduled.ScheduledDate != nil || unscheduled.ScheduledTime != nil {
		t.Errorf("unscheduled task = %+v, want inbox without schedule", unscheduled)
	}
}

func TestScheduleTaskRejectsBadTargets(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newMemoryTaskRepo()
	created, _ := NewCreateTaskUseCase(repo, nil).Execute(ctx, validInput(userID))

	tests := []struct {
		name   string
		date   string
		target string
		want   domainerror.TaskErrorCode
	}{
		{"before first slot", "2024-05-10", "slot-5", domainerror.ErrCodeInvalidTimeSlot},
		{"past midnight", "2024-05-10", "slot-24", domainerror.ErrCodeInvalidTimeSlot},
		{"not a slot", "2024-05-10", "inbox", domainerror.ErrCodeInvalidTimeSlot},
		{"bad date", "10/05/2024", "slot-9", domainerror.ErrCodeInvalidScheduleDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScheduleTaskUseCase(repo, nil).Execute(ctx, ScheduleTaskInput{
				UserID: userID, TaskID: created.ID, Date: tt.date, Target: tt.target,
			})
			assertTaskCode(t, err, tt.want)
		})
	}
	if repo.updates != 0 {
		t.Errorf("expected no updates, got %d", repo.updates)
	}
}

func TestTaskOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryTaskRepo()
	created, _ := NewCreateTaskUseCase(repo, nil).Execute(ctx, validInput(uuid.New()))

	err := NewDeleteTaskUseCase(repo, nil).Execute(ctx, uuid.New(), created.ID)
	assertTaskCode(t, err, domainerror.ErrCodeTaskNotFound)
	if len(repo.tasks) != 1 {
		t.Error("task of another user must not be deleted")
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newMemoryTaskRepo()
	create := NewCreateTaskUseCase(repo, nil)
	schedule := NewScheduleTaskUseCase(repo, nil)

	inbox, _ := create.Execute(ctx, validInput(userID))
	morning, _ := create.Execute(ctx, validInput(userID))
	other, _ := create.Execute(ctx, validInput(userID))

	if _, err := schedule.Execute(ctx, ScheduleTaskInput{UserID: userID, TaskID: morning.ID, Date: "2024-05-10", Target: "7"}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if _, err := schedule.Execute(ctx, ScheduleTaskInput{UserID: userID, TaskID: other.ID, Date: "2024-05-11", Target: "slot-7"}); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	out, err := NewListTasksUseCase(repo, nil).Execute(ctx, ListTasksInput{UserID: userID, Date: &day})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(out.Inbox) != 1 || out.Inbox[0].ID != inbox.ID {
		t.Errorf("inbox = %+v, want only %s", out.Inbox, inbox.ID)
	}
	if len(out.Scheduled) != 1 || out.Scheduled[0].ID != morning.ID {
		t.Errorf("scheduled = %+v, want only %s", out.Scheduled, morning.ID)
	}
	if len(out.Slots) != 18 {
		t.Fatalf("slots = %d, want 18", len(out.Slots))
	}
	if out.Slots[0].ID != "slot-6" || out.Slots[17].Label != "23:00" {
		t.Errorf("unexpected slot bounds %s / %s", out.Slots[0].ID, out.Slots[17].Label)
	}
	if len(out.Slots[1].Tasks) != 1 || out.Slots[1].Tasks[0].ID != morning.ID {
		t.Errorf("slot-7 tasks = %+v, want the morning task", out.Slots[1].Tasks)
	}

	all, err := NewListTasksUseCase(repo, nil).Execute(ctx, ListTasksInput{UserID: userID})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all.Scheduled) != 2 || all.Slots != nil {
		t.Errorf("expected both scheduled tasks and no slots, got %d / %v", len(all.Scheduled), all.Slots)
	}
}
