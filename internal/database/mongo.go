package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

// ErrNotConnected is returned by operations that need an open client.
var ErrNotConnected = errors.New("mongo client is not connected")

var (
	mongoConnect = mongo.Connect
	pingPrimary  = func(ctx context.Context, c *mongo.Client) error {
		return c.Ping(ctx, readpref.Primary())
	}
)

// ClientOptions builds driver options for uri with command tracing attached.
func ClientOptions(uri string) (*options.ClientOptions, error) {
	if uri == "" {
		return nil, fmt.Errorf("invalid mongo config: uri is required")
	}
	opts := options.Client().
		ApplyURI(uri).
		SetMonitor(otelmongo.NewMonitor())
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("mongo uri: %w", err)
	}
	return opts, nil
}

// Manager owns the process-wide client and database handle.
// The driver pools connections internally, so one Manager is shared by all requests.
type Manager struct {
	mu      sync.Mutex
	timeout time.Duration
	client  *mongo.Client
	db      *mongo.Database
}

// NewManager returns a Manager whose Connect gives up after timeout.
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Manager{timeout: timeout}
}

// Connect opens the client, verifies the primary is reachable, and caches the database handle.
// Calls after the first success return the cached handle without touching the network.
func (m *Manager) Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}
	if dbName == "" {
		return nil, fmt.Errorf("invalid mongo config: database name is required")
	}

	opts, err := ClientOptions(uri)
	if err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	client, err := mongoConnect(cctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := pingPrimary(cctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m.client = client
	m.db = client.Database(dbName)
	return m.db, nil
}

// Client returns the cached client, or nil before Connect.
func (m *Manager) Client() *mongo.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client
}

// Database returns the cached database handle, or nil before Connect.
func (m *Manager) Database() *mongo.Database {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db
}

// Ping checks the primary is still reachable.
func (m *Manager) Ping(ctx context.Context) error {
	client := m.Client()
	if client == nil {
		return ErrNotConnected
	}
	return pingPrimary(ctx, client)
}

// Close disconnects and clears cached state so a later Connect reopens cleanly.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	if err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
