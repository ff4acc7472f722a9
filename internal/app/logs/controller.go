//go:generate mockgen -source=controller.go -destination=controller_mock.go -package=logs
package logs

import (
	"context"
	"strconv"
	"sync"
	"time"

	"lookout/internal/app/api"
	"lookout/internal/app/bus"
	"lookout/internal/app/poller"
	"lookout/internal/config"
	"lookout/internal/config/logger"
)

// Snapshot is a consistent copy of the controller state for rendering
type Snapshot struct {
	TaskID          *int
	Content         string
	Cursor          int64
	HistoryOffset   int
	HasMoreHistory  bool
	AutoRefresh     bool
	Loading         bool
	FetchingHistory bool
	Err             error
}

// Controller keeps a bounded view of one task's log, fed forward by polling and backward by history pages
type Controller interface {
	SetActiveTask(id *int)
	PollForward(ctx context.Context) error
	LoadLatestHistory(ctx context.Context, pageSize int) error
	LoadOlderHistory(ctx context.Context, pageSize int) error
	Clear(ctx context.Context) error
	StartAutoRefresh(ctx context.Context)
	StopAutoRefresh()
	ToggleAutoRefresh(ctx context.Context)
	DismissError()
	Snapshot() Snapshot
	Close()
}

type controller struct {
	source   Source
	bus      bus.Bus
	log      logger.Logger
	interval time.Duration

	mu              sync.Mutex
	taskID          *int
	content         string
	cursor          int64
	historyOffset   int
	hasMore         bool
	loading         bool
	fetchingHistory bool
	err             error
	refresh         *poller.Handle

	// generation changes on every task switch; responses issued under an older one are dropped
	generation uint64
	// cursorEpoch changes whenever something other than a forward poll writes the cursor
	cursorEpoch uint64
	// clearEpoch changes on every successful Clear; history pages requested before it are dropped
	clearEpoch uint64
}

// NewController creates an idle controller with no active task
func NewController(cfg *config.Config, source Source, b bus.Bus, log logger.Logger) Controller {
	interval := cfg.Logs.Refresh
	if interval <= 0 {
		interval = RefreshInterval
	}

	return &controller{
		source:   source,
		bus:      b,
		log:      log.WithComponent("LOGS"),
		interval: interval,
	}
}

// SetActiveTask switches the viewed task, resetting buffer, cursor and history when it changes
func (c *controller) SetActiveTask(id *int) {
	c.mu.Lock()

	if sameTask(c.taskID, id) {
		c.mu.Unlock()
		return
	}

	if id != nil {
		v := *id
		id = &v
	}

	c.taskID = id
	c.generation++
	c.cursorEpoch++
	c.resetLocked()

	c.mu.Unlock()

	c.log.Debug().Str("task", formatTask(id)).Msg("Active task changed")
	c.publish(bus.EventLogsReset, bus.LogsReset{TaskID: id}, true)
}

// PollForward appends whatever the source has past the cursor; overlapping calls are dropped
func (c *controller) PollForward(ctx context.Context) error {
	c.mu.Lock()

	if c.taskID == nil || c.loading {
		c.mu.Unlock()
		return nil
	}

	c.loading = true
	taskID, from := *c.taskID, c.cursor
	gen, epoch := c.generation, c.cursorEpoch

	c.mu.Unlock()

	inc, err := c.source.Fetch(ctx, taskID, from)

	c.mu.Lock()
	c.loading = false

	if gen != c.generation {
		c.mu.Unlock()
		return nil
	}

	// a poll cut short by StopAutoRefresh is not a failure
	if err != nil && ctx.Err() != nil {
		c.mu.Unlock()
		return err
	}

	// superseded by a history load or a clear, whatever the outcome
	if epoch != c.cursorEpoch {
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		c.err = err
		c.mu.Unlock()

		c.log.Warn().Err(err).Int("task", taskID).Msg("Log poll failed")
		c.publish(bus.EventLogsFailed, bus.LogsFailed{TaskID: &taskID, Error: err}, false)

		return err
	}

	rotated := inc.NewPos < c.cursor
	if rotated {
		c.content = ""
	}

	var truncated bool

	c.content, truncated = appendCapped(c.content, inc.NewContent)
	c.cursor = inc.NewPos

	c.mu.Unlock()

	if rotated {
		c.log.Info().Int("task", taskID).Int64("from", from).Int64("to", inc.NewPos).Msg("Log rotated, buffer reset")
	}

	if truncated {
		c.log.Debug().Int("task", taskID).Msg("Log buffer trimmed")
	}

	if inc.NewContent != "" || rotated {
		c.publish(bus.EventLogsAppended, bus.LogsAppended{
			TaskID:    taskID,
			Content:   inc.NewContent,
			Rotated:   rotated,
			Truncated: truncated,
		}, true)
	}

	return nil
}

// LoadLatestHistory replaces the buffer with the newest page and resumes polling from its cursor
func (c *controller) LoadLatestHistory(ctx context.Context, pageSize int) error {
	taskID, _, ticket, ok := c.beginHistory(false)
	if !ok {
		return nil
	}

	page, err := c.source.Tail(ctx, taskID, 0, normalizePageSize(pageSize))

	c.mu.Lock()
	c.fetchingHistory = false

	if c.staleLocked(ticket) {
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		return c.failHistoryLocked(taskID, err)
	}

	c.content = page.Content
	c.setPageLocked(page)

	c.mu.Unlock()

	id := taskID
	c.publish(bus.EventLogsReset, bus.LogsReset{TaskID: &id, Content: page.Content}, true)

	return nil
}

// LoadOlderHistory prepends the next older page; a no-op once history is exhausted
func (c *controller) LoadOlderHistory(ctx context.Context, pageSize int) error {
	taskID, offset, ticket, ok := c.beginHistory(true)
	if !ok {
		return nil
	}

	page, err := c.source.Tail(ctx, taskID, offset, normalizePageSize(pageSize))

	c.mu.Lock()
	c.fetchingHistory = false

	if c.staleLocked(ticket) {
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		return c.failHistoryLocked(taskID, err)
	}

	c.content = prependHistory(c.content, page.Content)
	c.setPageLocked(page)

	c.mu.Unlock()

	c.publish(bus.EventLogsPrepended, bus.LogsPrepended{
		TaskID:  taskID,
		Content: page.Content,
		HasMore: page.HasMore,
	}, true)

	return nil
}

// Clear clears the log at the source, then resets local state; on failure local state is untouched
func (c *controller) Clear(ctx context.Context) error {
	c.mu.Lock()

	if c.taskID == nil {
		c.mu.Unlock()
		return nil
	}

	taskID, gen := *c.taskID, c.generation

	c.mu.Unlock()

	err := c.source.Clear(ctx, taskID)

	c.mu.Lock()

	if err != nil {
		if gen == c.generation {
			c.err = err
		}

		c.mu.Unlock()

		c.log.Error().Err(err).Int("task", taskID).Msg("Failed to clear logs")
		c.publish(bus.EventLogsFailed, bus.LogsFailed{TaskID: &taskID, Error: err}, false)

		return err
	}

	if gen != c.generation {
		c.mu.Unlock()
		return nil
	}

	c.cursorEpoch++
	c.clearEpoch++
	c.resetLocked()

	c.mu.Unlock()

	c.log.Info().Int("task", taskID).Msg("Logs cleared")
	c.publish(bus.EventLogsCleared, bus.LogsCleared{TaskID: taskID}, true)

	return nil
}

// StartAutoRefresh polls once right away and then every interval; a second call does nothing
func (c *controller) StartAutoRefresh(ctx context.Context) {
	c.mu.Lock()

	if c.refresh != nil {
		c.mu.Unlock()
		return
	}

	c.refresh = poller.Start(ctx, c.interval, func(ctx context.Context) {
		_ = c.PollForward(ctx)
	})

	c.mu.Unlock()

	c.publish(bus.EventAutoRefreshChanged, bus.AutoRefreshChanged{Enabled: true}, true)
}

// StopAutoRefresh disarms the timer and waits for an in-flight tick; a no-op when not running
func (c *controller) StopAutoRefresh() {
	c.mu.Lock()
	handle := c.refresh
	c.refresh = nil
	c.mu.Unlock()

	if handle == nil {
		return
	}

	handle.Stop()

	c.publish(bus.EventAutoRefreshChanged, bus.AutoRefreshChanged{Enabled: false}, true)
}

// ToggleAutoRefresh flips the polling timer
func (c *controller) ToggleAutoRefresh(ctx context.Context) {
	c.mu.Lock()
	running := c.refresh != nil
	c.mu.Unlock()

	if running {
		c.StopAutoRefresh()
		return
	}

	c.StartAutoRefresh(ctx)
}

// DismissError empties the error slot
func (c *controller) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = nil
}

// Snapshot returns a copy of the current state
func (c *controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var id *int
	if c.taskID != nil {
		v := *c.taskID
		id = &v
	}

	return Snapshot{
		TaskID:          id,
		Content:         c.content,
		Cursor:          c.cursor,
		HistoryOffset:   c.historyOffset,
		HasMoreHistory:  c.hasMore,
		AutoRefresh:     c.refresh != nil,
		Loading:         c.loading,
		FetchingHistory: c.fetchingHistory,
		Err:             c.err,
	}
}

// Close stops polling; the controller stays usable for manual calls
func (c *controller) Close() {
	c.StopAutoRefresh()
}

// historyTicket records what a history response must still match when it lands
type historyTicket struct {
	generation uint64
	clearEpoch uint64
}

// beginHistory claims the history busy flag, optionally requiring more history to exist
func (c *controller) beginHistory(older bool) (taskID, offset int, ticket historyTicket, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.taskID == nil || c.fetchingHistory {
		return 0, 0, historyTicket{}, false
	}

	if older && !c.hasMore {
		return 0, 0, historyTicket{}, false
	}

	c.fetchingHistory = true

	return *c.taskID, c.historyOffset, historyTicket{generation: c.generation, clearEpoch: c.clearEpoch}, true
}

// staleLocked reports whether a task switch or a clear happened since the ticket was issued
func (c *controller) staleLocked(t historyTicket) bool {
	return t.generation != c.generation || t.clearEpoch != c.clearEpoch
}

// setPageLocked applies the pagination fields of a history response; history always owns the cursor
func (c *controller) setPageLocked(page *api.LogPage) {
	c.historyOffset = page.NextOffset
	c.hasMore = page.HasMore
	c.cursor = page.NewPos
	c.cursorEpoch++
}

// failHistoryLocked records err and releases the lock
func (c *controller) failHistoryLocked(taskID int, err error) error {
	c.err = err
	c.mu.Unlock()

	c.log.Warn().Err(err).Int("task", taskID).Msg("History load failed")
	c.publish(bus.EventLogsFailed, bus.LogsFailed{TaskID: &taskID, Error: err}, false)

	return err
}

func (c *controller) resetLocked() {
	c.content = ""
	c.cursor = 0
	c.historyOffset = 0
	c.hasMore = false
}

func (c *controller) publish(t bus.MessageType, data interface{}, critical bool) {
	c.bus.Publish(bus.Message{Type: t, Data: data, Critical: critical})
}

func normalizePageSize(n int) int {
	switch {
	case n <= 0:
		return DefaultPageSize
	case n > config.MaxPageSize:
		return config.MaxPageSize
	default:
		return n
	}
}

func sameTask(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func formatTask(id *int) string {
	if id == nil {
		return "none"
	}

	return strconv.Itoa(*id)
}
