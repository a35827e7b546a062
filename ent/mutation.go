// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/learningsession"
	"github.com/jheine/lernbox/ent/predicate"
	"github.com/jheine/lernbox/ent/questionprogress"
	"github.com/jheine/lernbox/ent/subjectscript"
	"github.com/jheine/lernbox/ent/topicprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLearningSession  = "LearningSession"
	TypeQuestionProgress = "QuestionProgress"
	TypeSubjectScript    = "SubjectScript"
	TypeTopicProgress    = "TopicProgress"
)

// LearningSessionMutation represents an operation that mutates the LearningSession nodes in the graph.
type LearningSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	date                  *time.Time
	duration_minutes      *int
	addduration_minutes   *int
	questions_answered    *int
	addquestions_answered *int
	correct_answers       *int
	addcorrect_answers    *int
	topics                *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*LearningSession, error)
	predicates            []predicate.LearningSession
}

var _ ent.Mutation = (*LearningSessionMutation)(nil)

// learningsessionOption allows management of the mutation configuration using functional options.
type learningsessionOption func(*LearningSessionMutation)

// newLearningSessionMutation creates new mutation for the LearningSession entity.
func newLearningSessionMutation(c config, op Op, opts ...learningsessionOption) *LearningSessionMutation {
	m := &LearningSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningSessionID sets the ID field of the mutation.
func withLearningSessionID(id int) learningsessionOption {
	return func(m *LearningSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningSession
		)
		m.oldValue = func(ctx context.Context) (*LearningSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningSession sets the old LearningSession of the mutation.
func withLearningSession(node *LearningSession) learningsessionOption {
	return func(m *LearningSessionMutation) {
		m.oldValue = func(context.Context) (*LearningSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDate sets the "date" field.
func (m *LearningSessionMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *LearningSessionMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *LearningSessionMutation) ResetDate() {
	m.date = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *LearningSessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *LearningSessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *LearningSessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *LearningSessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *LearningSessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *LearningSessionMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *LearningSessionMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *LearningSessionMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *LearningSessionMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *LearningSessionMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *LearningSessionMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *LearningSessionMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *LearningSessionMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *LearningSessionMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *LearningSessionMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetTopics sets the "topics" field.
func (m *LearningSessionMutation) SetTopics(s string) {
	m.topics = &s
}

// Topics returns the value of the "topics" field in the mutation.
func (m *LearningSessionMutation) Topics() (r string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldTopics(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// ResetTopics resets all changes to the "topics" field.
func (m *LearningSessionMutation) ResetTopics() {
	m.topics = nil
}

// Where appends a list predicates to the LearningSessionMutation builder.
func (m *LearningSessionMutation) Where(ps ...predicate.LearningSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningSession).
func (m *LearningSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningSessionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.date != nil {
		fields = append(fields, learningsession.FieldDate)
	}
	if m.duration_minutes != nil {
		fields = append(fields, learningsession.FieldDurationMinutes)
	}
	if m.questions_answered != nil {
		fields = append(fields, learningsession.FieldQuestionsAnswered)
	}
	if m.correct_answers != nil {
		fields = append(fields, learningsession.FieldCorrectAnswers)
	}
	if m.topics != nil {
		fields = append(fields, learningsession.FieldTopics)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldDate:
		return m.Date()
	case learningsession.FieldDurationMinutes:
		return m.DurationMinutes()
	case learningsession.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	case learningsession.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case learningsession.FieldTopics:
		return m.Topics()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningsession.FieldDate:
		return m.OldDate(ctx)
	case learningsession.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case learningsession.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	case learningsession.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case learningsession.FieldTopics:
		return m.OldTopics(ctx)
	}
	return nil, fmt.Errorf("unknown LearningSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case learningsession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case learningsession.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	case learningsession.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case learningsession.FieldTopics:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningSessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, learningsession.FieldDurationMinutes)
	}
	if m.addquestions_answered != nil {
		fields = append(fields, learningsession.FieldQuestionsAnswered)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, learningsession.FieldCorrectAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case learningsession.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	case learningsession.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case learningsession.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	case learningsession.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearningSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningSessionMutation) ResetField(name string) error {
	switch name {
	case learningsession.FieldDate:
		m.ResetDate()
		return nil
	case learningsession.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case learningsession.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	case learningsession.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case learningsession.FieldTopics:
		m.ResetTopics()
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningSession edge %s", name)
}

// QuestionProgressMutation represents an operation that mutates the QuestionProgress nodes in the graph.
type QuestionProgressMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	question_id         *string
	correct_attempts    *int
	addcorrect_attempts *int
	wrong_attempts      *int
	addwrong_attempts   *int
	last_attempt        *time.Time
	next_review         *time.Time
	mastery_level       *int
	addmastery_level    *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*QuestionProgress, error)
	predicates          []predicate.QuestionProgress
}

var _ ent.Mutation = (*QuestionProgressMutation)(nil)

// questionprogressOption allows management of the mutation configuration using functional options.
type questionprogressOption func(*QuestionProgressMutation)

// newQuestionProgressMutation creates new mutation for the QuestionProgress entity.
func newQuestionProgressMutation(c config, op Op, opts ...questionprogressOption) *QuestionProgressMutation {
	m := &QuestionProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionProgressID sets the ID field of the mutation.
func withQuestionProgressID(id int) questionprogressOption {
	return func(m *QuestionProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionProgress
		)
		m.oldValue = func(ctx context.Context) (*QuestionProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionProgress sets the old QuestionProgress of the mutation.
func withQuestionProgress(node *QuestionProgress) questionprogressOption {
	return func(m *QuestionProgressMutation) {
		m.oldValue = func(context.Context) (*QuestionProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionProgressMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionProgressMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionProgress entity.
// If the QuestionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionProgressMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionProgressMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (m *QuestionProgressMutation) SetCorrectAttempts(i int) {
	m.correct_attempts = &i
	m.addcorrect_attempts = nil
}

// CorrectAttempts returns the value of the "correct_attempts" field in the mutation.
func (m *QuestionProgressMutation) CorrectAttempts() (r int, exists bool) {
	v := m.correct_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAttempts returns the old "correct_attempts" field's value of the QuestionProgress entity.
// If the QuestionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionProgressMutation) OldCorrectAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAttempts: %w", err)
	}
	return oldValue.CorrectAttempts, nil
}

// AddCorrectAttempts adds i to the "correct_attempts" field.
func (m *QuestionProgressMutation) AddCorrectAttempts(i int) {
	if m.addcorrect_attempts != nil {
		*m.addcorrect_attempts += i
	} else {
		m.addcorrect_attempts = &i
	}
}

// AddedCorrectAttempts returns the value that was added to the "correct_attempts" field in this mutation.
func (m *QuestionProgressMutation) AddedCorrectAttempts() (r int, exists bool) {
	v := m.addcorrect_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAttempts resets all changes to the "correct_attempts" field.
func (m *QuestionProgressMutation) ResetCorrectAttempts() {
	m.correct_attempts = nil
	m.addcorrect_attempts = nil
}

// SetWrongAttempts sets the "wrong_attempts" field.
func (m *QuestionProgressMutation) SetWrongAttempts(i int) {
	m.wrong_attempts = &i
	m.addwrong_attempts = nil
}

// WrongAttempts returns the value of the "wrong_attempts" field in the mutation.
func (m *QuestionProgressMutation) WrongAttempts() (r int, exists bool) {
	v := m.wrong_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldWrongAttempts returns the old "wrong_attempts" field's value of the QuestionProgress entity.
// If the QuestionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionProgressMutation) OldWrongAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrongAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrongAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrongAttempts: %w", err)
	}
	return oldValue.WrongAttempts, nil
}

// AddWrongAttempts adds i to the "wrong_attempts" field.
func (m *QuestionProgressMutation) AddWrongAttempts(i int) {
	if m.addwrong_attempts != nil {
		*m.addwrong_attempts += i
	} else {
		m.addwrong_attempts = &i
	}
}

// AddedWrongAttempts returns the value that was added to the "wrong_attempts" field in this mutation.
func (m *QuestionProgressMutation) AddedWrongAttempts() (r int, exists bool) {
	v := m.addwrong_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrongAttempts resets all changes to the "wrong_attempts" field.
func (m *QuestionProgressMutation) ResetWrongAttempts() {
	m.wrong_attempts = nil
	m.addwrong_attempts = nil
}

// SetLastAttempt sets the "last_attempt" field.
func (m *QuestionProgressMutation) SetLastAttempt(t time.Time) {
	m.last_attempt = &t
}

// LastAttempt returns the value of the "last_attempt" field in the mutation.
func (m *QuestionProgressMutation) LastAttempt() (r time.Time, exists bool) {
	v := m.last_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttempt returns the old "last_attempt" field's value of the QuestionProgress entity.
// If the QuestionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionProgressMutation) OldLastAttempt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttempt: %w", err)
	}
	return oldValue.LastAttempt, nil
}

// ClearLastAttempt clears the value of the "last_attempt" field.
func (m *QuestionProgressMutation) ClearLastAttempt() {
	m.last_attempt = nil
	m.clearedFields[questionprogress.FieldLastAttempt] = struct{}{}
}

// LastAttemptCleared returns if the "last_attempt" field was cleared in this mutation.
func (m *QuestionProgressMutation) LastAttemptCleared() bool {
	_, ok := m.clearedFields[questionprogress.FieldLastAttempt]
	return ok
}

// ResetLastAttempt resets all changes to the "last_attempt" field.
func (m *QuestionProgressMutation) ResetLastAttempt() {
	m.last_attempt = nil
	delete(m.clearedFields, questionprogress.FieldLastAttempt)
}

// SetNextReview sets the "next_review" field.
func (m *QuestionProgressMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *QuestionProgressMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the QuestionProgress entity.
// If the QuestionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionProgressMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ClearNextReview clears the value of the "next_review" field.
func (m *QuestionProgressMutation) ClearNextReview() {
	m.next_review = nil
	m.clearedFields[questionprogress.FieldNextReview] = struct{}{}
}

// NextReviewCleared returns if the "next_review" field was cleared in this mutation.
func (m *QuestionProgressMutation) NextReviewCleared() bool {
	_, ok := m.clearedFields[questionprogress.FieldNextReview]
	return ok
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *QuestionProgressMutation) ResetNextReview() {
	m.next_review = nil
	delete(m.clearedFields, questionprogress.FieldNextReview)
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *QuestionProgressMutation) SetMasteryLevel(i int) {
	m.mastery_level = &i
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *QuestionProgressMutation) MasteryLevel() (r int, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the QuestionProgress entity.
// If the QuestionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionProgressMutation) OldMasteryLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds i to the "mastery_level" field.
func (m *QuestionProgressMutation) AddMasteryLevel(i int) {
	if m.addmastery_level != nil {
		*m.addmastery_level += i
	} else {
		m.addmastery_level = &i
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *QuestionProgressMutation) AddedMasteryLevel() (r int, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *QuestionProgressMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// Where appends a list predicates to the QuestionProgressMutation builder.
func (m *QuestionProgressMutation) Where(ps ...predicate.QuestionProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionProgress).
func (m *QuestionProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.question_id != nil {
		fields = append(fields, questionprogress.FieldQuestionID)
	}
	if m.correct_attempts != nil {
		fields = append(fields, questionprogress.FieldCorrectAttempts)
	}
	if m.wrong_attempts != nil {
		fields = append(fields, questionprogress.FieldWrongAttempts)
	}
	if m.last_attempt != nil {
		fields = append(fields, questionprogress.FieldLastAttempt)
	}
	if m.next_review != nil {
		fields = append(fields, questionprogress.FieldNextReview)
	}
	if m.mastery_level != nil {
		fields = append(fields, questionprogress.FieldMasteryLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionprogress.FieldQuestionID:
		return m.QuestionID()
	case questionprogress.FieldCorrectAttempts:
		return m.CorrectAttempts()
	case questionprogress.FieldWrongAttempts:
		return m.WrongAttempts()
	case questionprogress.FieldLastAttempt:
		return m.LastAttempt()
	case questionprogress.FieldNextReview:
		return m.NextReview()
	case questionprogress.FieldMasteryLevel:
		return m.MasteryLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionprogress.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionprogress.FieldCorrectAttempts:
		return m.OldCorrectAttempts(ctx)
	case questionprogress.FieldWrongAttempts:
		return m.OldWrongAttempts(ctx)
	case questionprogress.FieldLastAttempt:
		return m.OldLastAttempt(ctx)
	case questionprogress.FieldNextReview:
		return m.OldNextReview(ctx)
	case questionprogress.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionprogress.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionprogress.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAttempts(v)
		return nil
	case questionprogress.FieldWrongAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrongAttempts(v)
		return nil
	case questionprogress.FieldLastAttempt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttempt(v)
		return nil
	case questionprogress.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	case questionprogress.FieldMasteryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionProgressMutation) AddedFields() []string {
	var fields []string
	if m.addcorrect_attempts != nil {
		fields = append(fields, questionprogress.FieldCorrectAttempts)
	}
	if m.addwrong_attempts != nil {
		fields = append(fields, questionprogress.FieldWrongAttempts)
	}
	if m.addmastery_level != nil {
		fields = append(fields, questionprogress.FieldMasteryLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionprogress.FieldCorrectAttempts:
		return m.AddedCorrectAttempts()
	case questionprogress.FieldWrongAttempts:
		return m.AddedWrongAttempts()
	case questionprogress.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionprogress.FieldCorrectAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAttempts(v)
		return nil
	case questionprogress.FieldWrongAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrongAttempts(v)
		return nil
	case questionprogress.FieldMasteryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionprogress.FieldLastAttempt) {
		fields = append(fields, questionprogress.FieldLastAttempt)
	}
	if m.FieldCleared(questionprogress.FieldNextReview) {
		fields = append(fields, questionprogress.FieldNextReview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionProgressMutation) ClearField(name string) error {
	switch name {
	case questionprogress.FieldLastAttempt:
		m.ClearLastAttempt()
		return nil
	case questionprogress.FieldNextReview:
		m.ClearNextReview()
		return nil
	}
	return fmt.Errorf("unknown QuestionProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionProgressMutation) ResetField(name string) error {
	switch name {
	case questionprogress.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionprogress.FieldCorrectAttempts:
		m.ResetCorrectAttempts()
		return nil
	case questionprogress.FieldWrongAttempts:
		m.ResetWrongAttempts()
		return nil
	case questionprogress.FieldLastAttempt:
		m.ResetLastAttempt()
		return nil
	case questionprogress.FieldNextReview:
		m.ResetNextReview()
		return nil
	case questionprogress.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	}
	return fmt.Errorf("unknown QuestionProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionProgress edge %s", name)
}

// SubjectScriptMutation represents an operation that mutates the SubjectScript nodes in the graph.
type SubjectScriptMutation struct {
	config
	op            Op
	typ           string
	id            *int
	subject_name  *string
	script_name   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SubjectScript, error)
	predicates    []predicate.SubjectScript
}

var _ ent.Mutation = (*SubjectScriptMutation)(nil)

// subjectscriptOption allows management of the mutation configuration using functional options.
type subjectscriptOption func(*SubjectScriptMutation)

// newSubjectScriptMutation creates new mutation for the SubjectScript entity.
func newSubjectScriptMutation(c config, op Op, opts ...subjectscriptOption) *SubjectScriptMutation {
	m := &SubjectScriptMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectScript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectScriptID sets the ID field of the mutation.
func withSubjectScriptID(id int) subjectscriptOption {
	return func(m *SubjectScriptMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectScript
		)
		m.oldValue = func(ctx context.Context) (*SubjectScript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectScript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectScript sets the old SubjectScript of the mutation.
func withSubjectScript(node *SubjectScript) subjectscriptOption {
	return func(m *SubjectScriptMutation) {
		m.oldValue = func(context.Context) (*SubjectScript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectScriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectScriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectScriptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectScriptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectScript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectName sets the "subject_name" field.
func (m *SubjectScriptMutation) SetSubjectName(s string) {
	m.subject_name = &s
}

// SubjectName returns the value of the "subject_name" field in the mutation.
func (m *SubjectScriptMutation) SubjectName() (r string, exists bool) {
	v := m.subject_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectName returns the old "subject_name" field's value of the SubjectScript entity.
// If the SubjectScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectScriptMutation) OldSubjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectName: %w", err)
	}
	return oldValue.SubjectName, nil
}

// ResetSubjectName resets all changes to the "subject_name" field.
func (m *SubjectScriptMutation) ResetSubjectName() {
	m.subject_name = nil
}

// SetScriptName sets the "script_name" field.
func (m *SubjectScriptMutation) SetScriptName(s string) {
	m.script_name = &s
}

// ScriptName returns the value of the "script_name" field in the mutation.
func (m *SubjectScriptMutation) ScriptName() (r string, exists bool) {
	v := m.script_name
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptName returns the old "script_name" field's value of the SubjectScript entity.
// If the SubjectScript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectScriptMutation) OldScriptName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptName: %w", err)
	}
	return oldValue.ScriptName, nil
}

// ResetScriptName resets all changes to the "script_name" field.
func (m *SubjectScriptMutation) ResetScriptName() {
	m.script_name = nil
}

// Where appends a list predicates to the SubjectScriptMutation builder.
func (m *SubjectScriptMutation) Where(ps ...predicate.SubjectScript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectScriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectScriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectScript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectScriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectScriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectScript).
func (m *SubjectScriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectScriptMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.subject_name != nil {
		fields = append(fields, subjectscript.FieldSubjectName)
	}
	if m.script_name != nil {
		fields = append(fields, subjectscript.FieldScriptName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectScriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectscript.FieldSubjectName:
		return m.SubjectName()
	case subjectscript.FieldScriptName:
		return m.ScriptName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectScriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectscript.FieldSubjectName:
		return m.OldSubjectName(ctx)
	case subjectscript.FieldScriptName:
		return m.OldScriptName(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectScript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectScriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectscript.FieldSubjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectName(v)
		return nil
	case subjectscript.FieldScriptName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptName(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectScript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectScriptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectScriptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectScriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SubjectScript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectScriptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectScriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectScriptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubjectScript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectScriptMutation) ResetField(name string) error {
	switch name {
	case subjectscript.FieldSubjectName:
		m.ResetSubjectName()
		return nil
	case subjectscript.FieldScriptName:
		m.ResetScriptName()
		return nil
	}
	return fmt.Errorf("unknown SubjectScript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectScriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectScriptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectScriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectScriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectScriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectScriptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectScriptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubjectScript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectScriptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubjectScript edge %s", name)
}

// TopicProgressMutation represents an operation that mutates the TopicProgress nodes in the graph.
type TopicProgressMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	topic_name            *string
	total_questions       *int
	addtotal_questions    *int
	correct_answers       *int
	addcorrect_answers    *int
	mastery_percentage    *float64
	addmastery_percentage *float64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TopicProgress, error)
	predicates            []predicate.TopicProgress
}

var _ ent.Mutation = (*TopicProgressMutation)(nil)

// topicprogressOption allows management of the mutation configuration using functional options.
type topicprogressOption func(*TopicProgressMutation)

// newTopicProgressMutation creates new mutation for the TopicProgress entity.
func newTopicProgressMutation(c config, op Op, opts ...topicprogressOption) *TopicProgressMutation {
	m := &TopicProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicProgressID sets the ID field of the mutation.
func withTopicProgressID(id int) topicprogressOption {
	return func(m *TopicProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicProgress
		)
		m.oldValue = func(ctx context.Context) (*TopicProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicProgress sets the old TopicProgress of the mutation.
func withTopicProgress(node *TopicProgress) topicprogressOption {
	return func(m *TopicProgressMutation) {
		m.oldValue = func(context.Context) (*TopicProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicName sets the "topic_name" field.
func (m *TopicProgressMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *TopicProgressMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *TopicProgressMutation) ResetTopicName() {
	m.topic_name = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *TopicProgressMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *TopicProgressMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *TopicProgressMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *TopicProgressMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *TopicProgressMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *TopicProgressMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *TopicProgressMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *TopicProgressMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *TopicProgressMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *TopicProgressMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (m *TopicProgressMutation) SetMasteryPercentage(f float64) {
	m.mastery_percentage = &f
	m.addmastery_percentage = nil
}

// MasteryPercentage returns the value of the "mastery_percentage" field in the mutation.
func (m *TopicProgressMutation) MasteryPercentage() (r float64, exists bool) {
	v := m.mastery_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryPercentage returns the old "mastery_percentage" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldMasteryPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryPercentage: %w", err)
	}
	return oldValue.MasteryPercentage, nil
}

// AddMasteryPercentage adds f to the "mastery_percentage" field.
func (m *TopicProgressMutation) AddMasteryPercentage(f float64) {
	if m.addmastery_percentage != nil {
		*m.addmastery_percentage += f
	} else {
		m.addmastery_percentage = &f
	}
}

// AddedMasteryPercentage returns the value that was added to the "mastery_percentage" field in this mutation.
func (m *TopicProgressMutation) AddedMasteryPercentage() (r float64, exists bool) {
	v := m.addmastery_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryPercentage resets all changes to the "mastery_percentage" field.
func (m *TopicProgressMutation) ResetMasteryPercentage() {
	m.mastery_percentage = nil
	m.addmastery_percentage = nil
}

// Where appends a list predicates to the TopicProgressMutation builder.
func (m *TopicProgressMutation) Where(ps ...predicate.TopicProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicProgress).
func (m *TopicProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicProgressMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.topic_name != nil {
		fields = append(fields, topicprogress.FieldTopicName)
	}
	if m.total_questions != nil {
		fields = append(fields, topicprogress.FieldTotalQuestions)
	}
	if m.correct_answers != nil {
		fields = append(fields, topicprogress.FieldCorrectAnswers)
	}
	if m.mastery_percentage != nil {
		fields = append(fields, topicprogress.FieldMasteryPercentage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldTopicName:
		return m.TopicName()
	case topicprogress.FieldTotalQuestions:
		return m.TotalQuestions()
	case topicprogress.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case topicprogress.FieldMasteryPercentage:
		return m.MasteryPercentage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicprogress.FieldTopicName:
		return m.OldTopicName(ctx)
	case topicprogress.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case topicprogress.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case topicprogress.FieldMasteryPercentage:
		return m.OldMasteryPercentage(ctx)
	}
	return nil, fmt.Errorf("unknown TopicProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case topicprogress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case topicprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case topicprogress.FieldMasteryPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicProgressMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_questions != nil {
		fields = append(fields, topicprogress.FieldTotalQuestions)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, topicprogress.FieldCorrectAnswers)
	}
	if m.addmastery_percentage != nil {
		fields = append(fields, topicprogress.FieldMasteryPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case topicprogress.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case topicprogress.FieldMasteryPercentage:
		return m.AddedMasteryPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case topicprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case topicprogress.FieldMasteryPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicProgressMutation) ResetField(name string) error {
	switch name {
	case topicprogress.FieldTopicName:
		m.ResetTopicName()
		return nil
	case topicprogress.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case topicprogress.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case topicprogress.FieldMasteryPercentage:
		m.ResetMasteryPercentage()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress edge %s", name)
}
