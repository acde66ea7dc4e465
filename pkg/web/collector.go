package web

import (
	"context"
	"sync"
	"time"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

// collector gathers the user-visible side effects of one server-side
// event firing so they can be returned in the response.
type collector struct {
	mu            sync.Mutex
	notifications []models.Notification
	navigatedTo   string
}

func newCollector() *collector {
	return &collector{notifications: []models.Notification{}}
}

func (c *collector) Notify(_ context.Context, message string, severity models.Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notifications = append(c.notifications, models.Notification{
		Message:   message,
		Severity:  severity.OrDefault(),
		Timestamp: time.Now().UTC(),
	})
}

func (c *collector) Navigate(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.navigatedTo = path

	return nil
}

var (
	_ protocol.Notifier  = (*collector)(nil)
	_ protocol.Navigator = (*collector)(nil)
)
