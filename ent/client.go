// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jheine/lernbox/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/learningsession"
	"github.com/jheine/lernbox/ent/questionprogress"
	"github.com/jheine/lernbox/ent/subjectscript"
	"github.com/jheine/lernbox/ent/topicprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LearningSession is the client for interacting with the LearningSession builders.
	LearningSession *LearningSessionClient
	// QuestionProgress is the client for interacting with the QuestionProgress builders.
	QuestionProgress *QuestionProgressClient
	// SubjectScript is the client for interacting with the SubjectScript builders.
	SubjectScript *SubjectScriptClient
	// TopicProgress is the client for interacting with the TopicProgress builders.
	TopicProgress *TopicProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LearningSession = NewLearningSessionClient(c.config)
	c.QuestionProgress = NewQuestionProgressClient(c.config)
	c.SubjectScript = NewSubjectScriptClient(c.config)
	c.TopicProgress = NewTopicProgressClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		LearningSession:  NewLearningSessionClient(cfg),
		QuestionProgress: NewQuestionProgressClient(cfg),
		SubjectScript:    NewSubjectScriptClient(cfg),
		TopicProgress:    NewTopicProgressClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		LearningSession:  NewLearningSessionClient(cfg),
		QuestionProgress: NewQuestionProgressClient(cfg),
		SubjectScript:    NewSubjectScriptClient(cfg),
		TopicProgress:    NewTopicProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LearningSession.
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
	c.LearningSession.Use(hooks...)
	c.QuestionProgress.Use(hooks...)
	c.SubjectScript.Use(hooks...)
	c.TopicProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LearningSession.Intercept(interceptors...)
	c.QuestionProgress.Intercept(interceptors...)
	c.SubjectScript.Intercept(interceptors...)
	c.TopicProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LearningSessionMutation:
		return c.LearningSession.mutate(ctx, m)
	case *QuestionProgressMutation:
		return c.QuestionProgress.mutate(ctx, m)
	case *SubjectScriptMutation:
		return c.SubjectScript.mutate(ctx, m)
	case *TopicProgressMutation:
		return c.TopicProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LearningSessionClient is a client for the LearningSession schema.
type LearningSessionClient struct {
	config
}

// NewLearningSessionClient returns a client for the LearningSession from the given config.
func NewLearningSessionClient(c config) *LearningSessionClient {
	return &LearningSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningsession.Hooks(f(g(h())))`.
func (c *LearningSessionClient) Use(hooks ...Hook) {
	c.hooks.LearningSession = append(c.hooks.LearningSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningsession.Intercept(f(g(h())))`.
func (c *LearningSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningSession = append(c.inters.LearningSession, interceptors...)
}

// Create returns a builder for creating a LearningSession entity.
func (c *LearningSessionClient) Create() *LearningSessionCreate {
	mutation := newLearningSessionMutation(c.config, OpCreate)
	return &LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningSession entities.
func (c *LearningSessionClient) CreateBulk(builders ...*LearningSessionCreate) *LearningSessionCreateBulk {
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningSessionClient) MapCreateBulk(slice any, setFunc func(*LearningSessionCreate, int)) *LearningSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningSessionCreateBulk{err: fmt.Errorf("calling to LearningSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningSession.
func (c *LearningSessionClient) Update() *LearningSessionUpdate {
	mutation := newLearningSessionMutation(c.config, OpUpdate)
	return &LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningSessionClient) UpdateOne(_m *LearningSession) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSession(_m))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningSessionClient) UpdateOneID(id int) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSessionID(id))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningSession.
func (c *LearningSessionClient) Delete() *LearningSessionDelete {
	mutation := newLearningSessionMutation(c.config, OpDelete)
	return &LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningSessionClient) DeleteOne(_m *LearningSession) *LearningSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningSessionClient) DeleteOneID(id int) *LearningSessionDeleteOne {
	builder := c.Delete().Where(learningsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningSessionDeleteOne{builder}
}

// Query returns a query builder for LearningSession.
func (c *LearningSessionClient) Query() *LearningSessionQuery {
	return &LearningSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningSession},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningSession entity by its id.
func (c *LearningSessionClient) Get(ctx context.Context, id int) (*LearningSession, error) {
	return c.Query().Where(learningsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningSessionClient) GetX(ctx context.Context, id int) *LearningSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningSessionClient) Hooks() []Hook {
	return c.hooks.LearningSession
}

// Interceptors returns the client interceptors.
func (c *LearningSessionClient) Interceptors() []Interceptor {
	return c.inters.LearningSession
}

func (c *LearningSessionClient) mutate(ctx context.Context, m *LearningSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningSession mutation op: %q", m.Op())
	}
}

// QuestionProgressClient is a client for the QuestionProgress schema.
type QuestionProgressClient struct {
	config
}

// NewQuestionProgressClient returns a client for the QuestionProgress from the given config.
func NewQuestionProgressClient(c config) *QuestionProgressClient {
	return &QuestionProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionprogress.Hooks(f(g(h())))`.
func (c *QuestionProgressClient) Use(hooks ...Hook) {
	c.hooks.QuestionProgress = append(c.hooks.QuestionProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionprogress.Intercept(f(g(h())))`.
func (c *QuestionProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionProgress = append(c.inters.QuestionProgress, interceptors...)
}

// Create returns a builder for creating a QuestionProgress entity.
func (c *QuestionProgressClient) Create() *QuestionProgressCreate {
	mutation := newQuestionProgressMutation(c.config, OpCreate)
	return &QuestionProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionProgress entities.
func (c *QuestionProgressClient) CreateBulk(builders ...*QuestionProgressCreate) *QuestionProgressCreateBulk {
	return &QuestionProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionProgressClient) MapCreateBulk(slice any, setFunc func(*QuestionProgressCreate, int)) *QuestionProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionProgressCreateBulk{err: fmt.Errorf("calling to QuestionProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionProgress.
func (c *QuestionProgressClient) Update() *QuestionProgressUpdate {
	mutation := newQuestionProgressMutation(c.config, OpUpdate)
	return &QuestionProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionProgressClient) UpdateOne(_m *QuestionProgress) *QuestionProgressUpdateOne {
	mutation := newQuestionProgressMutation(c.config, OpUpdateOne, withQuestionProgress(_m))
	return &QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionProgressClient) UpdateOneID(id int) *QuestionProgressUpdateOne {
	mutation := newQuestionProgressMutation(c.config, OpUpdateOne, withQuestionProgressID(id))
	return &QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionProgress.
func (c *QuestionProgressClient) Delete() *QuestionProgressDelete {
	mutation := newQuestionProgressMutation(c.config, OpDelete)
	return &QuestionProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionProgressClient) DeleteOne(_m *QuestionProgress) *QuestionProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionProgressClient) DeleteOneID(id int) *QuestionProgressDeleteOne {
	builder := c.Delete().Where(questionprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionProgressDeleteOne{builder}
}

// Query returns a query builder for QuestionProgress.
func (c *QuestionProgressClient) Query() *QuestionProgressQuery {
	return &QuestionProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionProgress entity by its id.
func (c *QuestionProgressClient) Get(ctx context.Context, id int) (*QuestionProgress, error) {
	return c.Query().Where(questionprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionProgressClient) GetX(ctx context.Context, id int) *QuestionProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionProgressClient) Hooks() []Hook {
	return c.hooks.QuestionProgress
}

// Interceptors returns the client interceptors.
func (c *QuestionProgressClient) Interceptors() []Interceptor {
	return c.inters.QuestionProgress
}

func (c *QuestionProgressClient) mutate(ctx context.Context, m *QuestionProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionProgress mutation op: %q", m.Op())
	}
}

// SubjectScriptClient is a client for the SubjectScript schema.
type SubjectScriptClient struct {
	config
}

// NewSubjectScriptClient returns a client for the SubjectScript from the given config.
func NewSubjectScriptClient(c config) *SubjectScriptClient {
	return &SubjectScriptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subjectscript.Hooks(f(g(h())))`.
func (c *SubjectScriptClient) Use(hooks ...Hook) {
	c.hooks.SubjectScript = append(c.hooks.SubjectScript, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subjectscript.Intercept(f(g(h())))`.
func (c *SubjectScriptClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubjectScript = append(c.inters.SubjectScript, interceptors...)
}

// Create returns a builder for creating a SubjectScript entity.
func (c *SubjectScriptClient) Create() *SubjectScriptCreate {
	mutation := newSubjectScriptMutation(c.config, OpCreate)
	return &SubjectScriptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubjectScript entities.
func (c *SubjectScriptClient) CreateBulk(builders ...*SubjectScriptCreate) *SubjectScriptCreateBulk {
	return &SubjectScriptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectScriptClient) MapCreateBulk(slice any, setFunc func(*SubjectScriptCreate, int)) *SubjectScriptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectScriptCreateBulk{err: fmt.Errorf("calling to SubjectScriptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectScriptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectScriptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubjectScript.
func (c *SubjectScriptClient) Update() *SubjectScriptUpdate {
	mutation := newSubjectScriptMutation(c.config, OpUpdate)
	return &SubjectScriptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectScriptClient) UpdateOne(_m *SubjectScript) *SubjectScriptUpdateOne {
	mutation := newSubjectScriptMutation(c.config, OpUpdateOne, withSubjectScript(_m))
	return &SubjectScriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectScriptClient) UpdateOneID(id int) *SubjectScriptUpdateOne {
	mutation := newSubjectScriptMutation(c.config, OpUpdateOne, withSubjectScriptID(id))
	return &SubjectScriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubjectScript.
func (c *SubjectScriptClient) Delete() *SubjectScriptDelete {
	mutation := newSubjectScriptMutation(c.config, OpDelete)
	return &SubjectScriptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectScriptClient) DeleteOne(_m *SubjectScript) *SubjectScriptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectScriptClient) DeleteOneID(id int) *SubjectScriptDeleteOne {
	builder := c.Delete().Where(subjectscript.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectScriptDeleteOne{builder}
}

// Query returns a query builder for SubjectScript.
func (c *SubjectScriptClient) Query() *SubjectScriptQuery {
	return &SubjectScriptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubjectScript},
		inters: c.Interceptors(),
	}
}

// Get returns a SubjectScript entity by its id.
func (c *SubjectScriptClient) Get(ctx context.Context, id int) (*SubjectScript, error) {
	return c.Query().Where(subjectscript.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectScriptClient) GetX(ctx context.Context, id int) *SubjectScript {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectScriptClient) Hooks() []Hook {
	return c.hooks.SubjectScript
}

// Interceptors returns the client interceptors.
func (c *SubjectScriptClient) Interceptors() []Interceptor {
	return c.inters.SubjectScript
}

func (c *SubjectScriptClient) mutate(ctx context.Context, m *SubjectScriptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectScriptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectScriptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectScriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectScriptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubjectScript mutation op: %q", m.Op())
	}
}

// TopicProgressClient is a client for the TopicProgress schema.
type TopicProgressClient struct {
	config
}

// NewTopicProgressClient returns a client for the TopicProgress from the given config.
func NewTopicProgressClient(c config) *TopicProgressClient {
	return &TopicProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicprogress.Hooks(f(g(h())))`.
func (c *TopicProgressClient) Use(hooks ...Hook) {
	c.hooks.TopicProgress = append(c.hooks.TopicProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicprogress.Intercept(f(g(h())))`.
func (c *TopicProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicProgress = append(c.inters.TopicProgress, interceptors...)
}

// Create returns a builder for creating a TopicProgress entity.
func (c *TopicProgressClient) Create() *TopicProgressCreate {
	mutation := newTopicProgressMutation(c.config, OpCreate)
	return &TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicProgress entities.
func (c *TopicProgressClient) CreateBulk(builders ...*TopicProgressCreate) *TopicProgressCreateBulk {
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicProgressClient) MapCreateBulk(slice any, setFunc func(*TopicProgressCreate, int)) *TopicProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicProgressCreateBulk{err: fmt.Errorf("calling to TopicProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicProgress.
func (c *TopicProgressClient) Update() *TopicProgressUpdate {
	mutation := newTopicProgressMutation(c.config, OpUpdate)
	return &TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicProgressClient) UpdateOne(_m *TopicProgress) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgress(_m))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicProgressClient) UpdateOneID(id int) *TopicProgressUpdateOne {
	mutation := newTopicProgressMutation(c.config, OpUpdateOne, withTopicProgressID(id))
	return &TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicProgress.
func (c *TopicProgressClient) Delete() *TopicProgressDelete {
	mutation := newTopicProgressMutation(c.config, OpDelete)
	return &TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicProgressClient) DeleteOne(_m *TopicProgress) *TopicProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicProgressClient) DeleteOneID(id int) *TopicProgressDeleteOne {
	builder := c.Delete().Where(topicprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicProgressDeleteOne{builder}
}

// Query returns a query builder for TopicProgress.
func (c *TopicProgressClient) Query() *TopicProgressQuery {
	return &TopicProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicProgress entity by its id.
func (c *TopicProgressClient) Get(ctx context.Context, id int) (*TopicProgress, error) {
	return c.Query().Where(topicprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicProgressClient) GetX(ctx context.Context, id int) *TopicProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicProgressClient) Hooks() []Hook {
	return c.hooks.TopicProgress
}

// Interceptors returns the client interceptors.
func (c *TopicProgressClient) Interceptors() []Interceptor {
	return c.inters.TopicProgress
}

func (c *TopicProgressClient) mutate(ctx context.Context, m *TopicProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LearningSession, QuestionProgress, SubjectScript, TopicProgress []ent.Hook
	}
	inters struct {
		LearningSession, QuestionProgress, SubjectScript,
		TopicProgress []ent.Interceptor
	}
)
