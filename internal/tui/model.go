// Package tui implements the terminal client: a task creation form next to the
// list of recent open tasks.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phrazzld/taskpad/internal/domain"
)

// Banner texts.
const (
	MsgCreated        = "Task created successfully!"
	MsgCompleted      = "Task completed! Well done!"
	MsgCreateFailed   = "Failed to create task. Please try again."
	MsgCompleteFailed = "Failed to complete task. Please try again."
	MsgLoadFailed     = "Failed to load tasks. Please try again."
)

// SuccessBannerDuration is how long a success banner stays visible.
const SuccessBannerDuration = 3 * time.Second

// TaskClient is the subset of the API client the UI needs.
type TaskClient interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, title, description string) (*domain.Task, error)
	CompleteTask(ctx context.Context, id int64) (*domain.Task, error)
}

// Focus targets, cycled with tab and shift+tab.
const (
	focusTitle = iota
	focusDescription
	focusList
	focusCount
)

// Model is the bubbletea model for the task screen.
type Model struct {
	ctx    context.Context
	client TaskClient

	focus    int
	selected int
	width    int

	title       []rune
	description []rune

	tasks []domain.Task

	loading    bool
	submitting bool
	// completingID is the task whose completion is in flight; 0 means none.
	// Store IDs start at 1.
	completingID int64

	errMsg     string
	successMsg string
	// successSeq identifies the current success banner so a stale dismiss
	// timer cannot clear a newer one.
	successSeq int
}

// Messages produced by commands.
type (
	tasksLoadedMsg struct {
		tasks []domain.Task
		err   error
	}

	taskCreatedMsg struct {
		task *domain.Task
		err  error
	}

	taskCompletedMsg struct {
		id  int64
		err error
	}

	dismissSuccessMsg struct {
		seq int
	}
)

// New creates the model. The first list fetch starts from Init.
func New(ctx context.Context, client TaskClient) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:     ctx,
		client:  client,
		focus:   focusTitle,
		loading: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.fetchTasks()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = MsgLoadFailed
			return m, nil
		}
		m.tasks = msg.tasks
		m.errMsg = ""
		m.clampSelection()
		return m, nil

	case taskCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = MsgCreateFailed
			return m, nil
		}
		m.title = nil
		m.description = nil
		m.loading = true
		cmd := m.showSuccess(MsgCreated)
		return m, tea.Batch(m.fetchTasks(), cmd)

	case taskCompletedMsg:
		m.completingID = 0
		if msg.err != nil {
			m.errMsg = MsgCompleteFailed
			return m, nil
		}
		m.removeTask(msg.id)
		return m, m.showSuccess(MsgCompleted)

	case dismissSuccessMsg:
		if msg.seq == m.successSeq {
			m.successMsg = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		return m, nil
	case "shift+tab":
		m.focus = (m.focus - 1 + focusCount) % focusCount
		return m, nil
	case "enter":
		if m.focus == focusList {
			return m.completeSelected()
		}
		return m.submit()
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	m.handleTextKey(msg)
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}
	case "r":
		if !m.loading {
			m.loading = true
			return m, m.fetchTasks()
		}
	case "x":
		m.errMsg = ""
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleTextKey(msg tea.KeyMsg) {
	field := &m.title
	if m.focus == focusDescription {
		field = &m.description
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if n := len(*field); n > 0 {
			*field = (*field)[:n-1]
		}
	case tea.KeySpace:
		m.appendRunes(field, []rune{' '})
	case tea.KeyRunes:
		m.appendRunes(field, msg.Runes)
	}
}

// appendRunes adds typed input, capping the title at the server's limit.
func (m *Model) appendRunes(field *[]rune, runes []rune) {
	if field == &m.title {
		room := domain.MaxTitleLength - len(m.title)
		if room <= 0 {
			return
		}
		if len(runes) > room {
			runes = runes[:room]
		}
	}
	*field = append(*field, runes...)
}

// CanSubmit reports whether the form may be submitted.
func (m Model) CanSubmit() bool {
	return !m.submitting && strings.TrimSpace(string(m.title)) != ""
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.CanSubmit() {
		return m, nil
	}
	m.submitting = true
	m.errMsg = ""

	client, ctx := m.client, m.ctx
	title, description := string(m.title), string(m.description)
	return m, func() tea.Msg {
		task, err := client.CreateTask(ctx, title, description)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m Model) completeSelected() (tea.Model, tea.Cmd) {
	if m.completingID != 0 || m.loading || len(m.tasks) == 0 {
		return m, nil
	}
	id := m.tasks[m.selected].ID
	m.completingID = id
	m.errMsg = ""

	client, ctx := m.client, m.ctx
	return m, func() tea.Msg {
		_, err := client.CompleteTask(ctx, id)
		return taskCompletedMsg{id: id, err: err}
	}
}

func (m Model) fetchTasks() tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		tasks, err := client.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m *Model) showSuccess(text string) tea.Cmd {
	m.successSeq++
	m.successMsg = text
	seq := m.successSeq
	return tea.Tick(SuccessBannerDuration, func(time.Time) tea.Msg {
		return dismissSuccessMsg{seq: seq}
	})
}

func (m *Model) removeTask(id int64) {
	kept := m.tasks[:0:0]
	for _, task := range m.tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	m.tasks = kept
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
