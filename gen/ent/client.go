// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/wastetrack/slips-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Slip is the client for interacting with the Slip builders.
	Slip *SlipClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Slip = NewSlipClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:    ctx,
		config: cfg,
		Slip:   NewSlipClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:    ctx,
		config: cfg,
		Slip:   NewSlipClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Slip.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Slip.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Slip.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SlipMutation:
		return c.Slip.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SlipClient is a client for the Slip schema.
type SlipClient struct {
	config
}

// NewSlipClient returns a client for the Slip from the given config.
func NewSlipClient(c config) *SlipClient {
	return &SlipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slip.Hooks(f(g(h())))`.
func (c *SlipClient) Use(hooks ...Hook) {
	c.hooks.Slip = append(c.hooks.Slip, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slip.Intercept(f(g(h())))`.
func (c *SlipClient) Intercept(interceptors ...Interceptor) {
	c.inters.Slip = append(c.inters.Slip, interceptors...)
}

// Create returns a builder for creating a Slip entity.
func (c *SlipClient) Create() *SlipCreate {
	mutation := newSlipMutation(c.config, OpCreate)
	return &SlipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Slip entities.
func (c *SlipClient) CreateBulk(builders ...*SlipCreate) *SlipCreateBulk {
	return &SlipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlipClient) MapCreateBulk(slice any, setFunc func(*SlipCreate, int)) *SlipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlipCreateBulk{err: fmt.Errorf("calling to SlipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Slip.
func (c *SlipClient) Update() *SlipUpdate {
	mutation := newSlipMutation(c.config, OpUpdate)
	return &SlipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlipClient) UpdateOne(_m *Slip) *SlipUpdateOne {
	mutation := newSlipMutation(c.config, OpUpdateOne, withSlip(_m))
	return &SlipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlipClient) UpdateOneID(id uuid.UUID) *SlipUpdateOne {
	mutation := newSlipMutation(c.config, OpUpdateOne, withSlipID(id))
	return &SlipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Slip.
func (c *SlipClient) Delete() *SlipDelete {
	mutation := newSlipMutation(c.config, OpDelete)
	return &SlipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlipClient) DeleteOne(_m *Slip) *SlipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlipClient) DeleteOneID(id uuid.UUID) *SlipDeleteOne {
	builder := c.Delete().Where(slip.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlipDeleteOne{builder}
}

// Query returns a query builder for Slip.
func (c *SlipClient) Query() *SlipQuery {
	return &SlipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlip},
		inters: c.Interceptors(),
	}
}

// Get returns a Slip entity by its id.
func (c *SlipClient) Get(ctx context.Context, id uuid.UUID) (*Slip, error) {
	return c.Query().Where(slip.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlipClient) GetX(ctx context.Context, id uuid.UUID) *Slip {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlipClient) Hooks() []Hook {
	return c.hooks.Slip
}

// Interceptors returns the client interceptors.
func (c *SlipClient) Interceptors() []Interceptor {
	return c.inters.Slip
}

func (c *SlipClient) mutate(ctx context.Context, m *SlipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Slip mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Slip []ent.Hook
	}
	inters struct {
		Slip []ent.Interceptor
	}
)
