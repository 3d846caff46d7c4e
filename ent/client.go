// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/doubtbox/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/doubtbox/ent/chatturnevent"
	"github.com/abhisek/doubtbox/ent/llmrequestevent"
	"github.com/abhisek/doubtbox/ent/quizresultevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatTurnEvent is the client for interacting with the ChatTurnEvent builders.
	ChatTurnEvent *ChatTurnEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuizResultEvent is the client for interacting with the QuizResultEvent builders.
	QuizResultEvent *QuizResultEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatTurnEvent = NewChatTurnEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuizResultEvent = NewQuizResultEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ChatTurnEvent:   NewChatTurnEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuizResultEvent: NewQuizResultEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ChatTurnEvent:   NewChatTurnEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuizResultEvent: NewQuizResultEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatTurnEvent.
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
	c.ChatTurnEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.QuizResultEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChatTurnEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.QuizResultEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatTurnEventMutation:
		return c.ChatTurnEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuizResultEventMutation:
		return c.QuizResultEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatTurnEventClient is a client for the ChatTurnEvent schema.
type ChatTurnEventClient struct {
	config
}

// NewChatTurnEventClient returns a client for the ChatTurnEvent from the given config.
func NewChatTurnEventClient(c config) *ChatTurnEventClient {
	return &ChatTurnEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatturnevent.Hooks(f(g(h())))`.
func (c *ChatTurnEventClient) Use(hooks ...Hook) {
	c.hooks.ChatTurnEvent = append(c.hooks.ChatTurnEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatturnevent.Intercept(f(g(h())))`.
func (c *ChatTurnEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatTurnEvent = append(c.inters.ChatTurnEvent, interceptors...)
}

// Create returns a builder for creating a ChatTurnEvent entity.
func (c *ChatTurnEventClient) Create() *ChatTurnEventCreate {
	mutation := newChatTurnEventMutation(c.config, OpCreate)
	return &ChatTurnEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatTurnEvent entities.
func (c *ChatTurnEventClient) CreateBulk(builders ...*ChatTurnEventCreate) *ChatTurnEventCreateBulk {
	return &ChatTurnEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatTurnEventClient) MapCreateBulk(slice any, setFunc func(*ChatTurnEventCreate, int)) *ChatTurnEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatTurnEventCreateBulk{err: fmt.Errorf("calling to ChatTurnEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatTurnEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatTurnEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatTurnEvent.
func (c *ChatTurnEventClient) Update() *ChatTurnEventUpdate {
	mutation := newChatTurnEventMutation(c.config, OpUpdate)
	return &ChatTurnEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatTurnEventClient) UpdateOne(_m *ChatTurnEvent) *ChatTurnEventUpdateOne {
	mutation := newChatTurnEventMutation(c.config, OpUpdateOne, withChatTurnEvent(_m))
	return &ChatTurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatTurnEventClient) UpdateOneID(id int) *ChatTurnEventUpdateOne {
	mutation := newChatTurnEventMutation(c.config, OpUpdateOne, withChatTurnEventID(id))
	return &ChatTurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatTurnEvent.
func (c *ChatTurnEventClient) Delete() *ChatTurnEventDelete {
	mutation := newChatTurnEventMutation(c.config, OpDelete)
	return &ChatTurnEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatTurnEventClient) DeleteOne(_m *ChatTurnEvent) *ChatTurnEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatTurnEventClient) DeleteOneID(id int) *ChatTurnEventDeleteOne {
	builder := c.Delete().Where(chatturnevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatTurnEventDeleteOne{builder}
}

// Query returns a query builder for ChatTurnEvent.
func (c *ChatTurnEventClient) Query() *ChatTurnEventQuery {
	return &ChatTurnEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatTurnEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatTurnEvent entity by its id.
func (c *ChatTurnEventClient) Get(ctx context.Context, id int) (*ChatTurnEvent, error) {
	return c.Query().Where(chatturnevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatTurnEventClient) GetX(ctx context.Context, id int) *ChatTurnEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatTurnEventClient) Hooks() []Hook {
	return c.hooks.ChatTurnEvent
}

// Interceptors returns the client interceptors.
func (c *ChatTurnEventClient) Interceptors() []Interceptor {
	return c.inters.ChatTurnEvent
}

func (c *ChatTurnEventClient) mutate(ctx context.Context, m *ChatTurnEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatTurnEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatTurnEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatTurnEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatTurnEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatTurnEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuizResultEventClient is a client for the QuizResultEvent schema.
type QuizResultEventClient struct {
	config
}

// NewQuizResultEventClient returns a client for the QuizResultEvent from the given config.
func NewQuizResultEventClient(c config) *QuizResultEventClient {
	return &QuizResultEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizresultevent.Hooks(f(g(h())))`.
func (c *QuizResultEventClient) Use(hooks ...Hook) {
	c.hooks.QuizResultEvent = append(c.hooks.QuizResultEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizresultevent.Intercept(f(g(h())))`.
func (c *QuizResultEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizResultEvent = append(c.inters.QuizResultEvent, interceptors...)
}

// Create returns a builder for creating a QuizResultEvent entity.
func (c *QuizResultEventClient) Create() *QuizResultEventCreate {
	mutation := newQuizResultEventMutation(c.config, OpCreate)
	return &QuizResultEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizResultEvent entities.
func (c *QuizResultEventClient) CreateBulk(builders ...*QuizResultEventCreate) *QuizResultEventCreateBulk {
	return &QuizResultEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizResultEventClient) MapCreateBulk(slice any, setFunc func(*QuizResultEventCreate, int)) *QuizResultEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizResultEventCreateBulk{err: fmt.Errorf("calling to QuizResultEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizResultEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizResultEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizResultEvent.
func (c *QuizResultEventClient) Update() *QuizResultEventUpdate {
	mutation := newQuizResultEventMutation(c.config, OpUpdate)
	return &QuizResultEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizResultEventClient) UpdateOne(_m *QuizResultEvent) *QuizResultEventUpdateOne {
	mutation := newQuizResultEventMutation(c.config, OpUpdateOne, withQuizResultEvent(_m))
	return &QuizResultEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizResultEventClient) UpdateOneID(id int) *QuizResultEventUpdateOne {
	mutation := newQuizResultEventMutation(c.config, OpUpdateOne, withQuizResultEventID(id))
	return &QuizResultEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizResultEvent.
func (c *QuizResultEventClient) Delete() *QuizResultEventDelete {
	mutation := newQuizResultEventMutation(c.config, OpDelete)
	return &QuizResultEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizResultEventClient) DeleteOne(_m *QuizResultEvent) *QuizResultEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizResultEventClient) DeleteOneID(id int) *QuizResultEventDeleteOne {
	builder := c.Delete().Where(quizresultevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizResultEventDeleteOne{builder}
}

// Query returns a query builder for QuizResultEvent.
func (c *QuizResultEventClient) Query() *QuizResultEventQuery {
	return &QuizResultEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizResultEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizResultEvent entity by its id.
func (c *QuizResultEventClient) Get(ctx context.Context, id int) (*QuizResultEvent, error) {
	return c.Query().Where(quizresultevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizResultEventClient) GetX(ctx context.Context, id int) *QuizResultEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizResultEventClient) Hooks() []Hook {
	return c.hooks.QuizResultEvent
}

// Interceptors returns the client interceptors.
func (c *QuizResultEventClient) Interceptors() []Interceptor {
	return c.inters.QuizResultEvent
}

func (c *QuizResultEventClient) mutate(ctx context.Context, m *QuizResultEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizResultEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizResultEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizResultEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizResultEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizResultEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatTurnEvent, LLMRequestEvent, QuizResultEvent []ent.Hook
	}
	inters struct {
		ChatTurnEvent, LLMRequestEvent, QuizResultEvent []ent.Interceptor
	}
)
