package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsumer() (*Consumer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	out := logrus.New()
	out.SetOutput(buf)
	out.SetFormatter(&logrus.JSONFormatter{})
	return NewConsumer("amqp://unused", "", out), buf
}

func TestNewActivityEvent(t *testing.T) {
	ev := NewActivityEvent(EventWorkoutCreated, 3, 11, "Leg day")
	assert.Len(t, ev.EventID, 36)
	assert.Equal(t, EventWorkoutCreated, ev.Type)
	assert.Equal(t, uint64(11), ev.WorkoutID)
	assert.NotEmpty(t, ev.OccurredAt)
}

func TestHandleMessage_WritesLine(t *testing.T) {
	c, buf := newTestConsumer()
	assert.Equal(t, DefaultQueue, c.queue)

	weight := 40.0
	ev := NewActivityEvent(EventWorkoutExerciseAdded, 3, 11, "Leg day")
	ev.ExerciseName = "Squats"
	ev.Sets, ev.Reps, ev.Weight = 4, 8, &weight
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, c.HandleMessage(body))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, ev.EventID, line["event_id"])
	assert.Contains(t, line["msg"], `exercise="Squats"`)
	assert.Contains(t, line["msg"], "weight=40kg")
}

func TestHandleMessage_RejectsMalformed(t *testing.T) {
	c, buf := newTestConsumer()
	assert.Error(t, c.HandleMessage([]byte("{not json")))
	assert.Error(t, c.HandleMessage([]byte(`{"type":"workout.created"}`)))
	assert.Zero(t, buf.Len())
}

func TestFormatActivity_WorkoutCreated(t *testing.T) {
	line := FormatActivity(ActivityEvent{Type: EventWorkoutCreated, WorkoutName: "Push", OccurredAt: "2024-01-01T00:00:00Z"})
	assert.Equal(t, `Workout created | workout="Push" | at=2024-01-01T00:00:00Z`, line)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), ActivityEvent{}))
}
