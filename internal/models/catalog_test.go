package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildShape() *CourseShape {
	course := Course{ID: 1, Title: "Course", PassThreshold: 70, SequentialProgression: true}
	modules := []Module{
		{ID: 1, CourseID: 1, Title: "First", ModuleOrder: 1},
		{ID: 2, CourseID: 1, Title: "Second", ModuleOrder: 2},
	}
	topics := []Topic{
		{ID: 10, ModuleID: 1, Title: "A", TopicOrder: 1},
		{ID: 11, ModuleID: 1, Title: "B", TopicOrder: 2},
		{ID: 20, ModuleID: 2, Title: "C", TopicOrder: 1},
	}
	questions := []QuizQuestion{
		{ID: 100, TopicID: 11, Prompt: "Q1", Options: []string{"x", "y"}, CorrectOption: 1, Weight: 2, QuestionOrder: 1},
		{ID: 101, TopicID: 11, Prompt: "Q2", Options: []string{"x", "y", "z"}, CorrectOption: 0, Weight: 1, QuestionOrder: 2},
	}
	return NewCourseShape(course, modules, topics, questions)
}

func TestCourseShape_Lookups(t *testing.T) {
	shape := buildShape()

	topic, ok := shape.Topic(11)
	assert.True(t, ok)
	assert.Equal(t, "B", topic.Title)

	_, ok = shape.Topic(999)
	assert.False(t, ok)

	assert.Equal(t, []int{10, 11, 20}, shape.TopicIDs())
	assert.Equal(t, []int{10, 11}, shape.ModuleTopicIDs(1))
	assert.Equal(t, []int{20}, shape.ModuleTopicIDs(2))

	assert.True(t, shape.HasQuiz(11))
	assert.False(t, shape.HasQuiz(10))
	assert.Len(t, shape.Questions(11), 2)
	assert.Nil(t, shape.Questions(10))
}

func TestCourseShape_PredecessorOf(t *testing.T) {
	shape := buildShape()

	tests := []struct {
		name         string
		topicID      int
		expectedPred int
		expectedOK   bool
	}{
		{
			name:       "first topic has no predecessor",
			topicID:    10,
			expectedOK: false,
		},
		{
			name:         "within module",
			topicID:      11,
			expectedPred: 10,
			expectedOK:   true,
		},
		{
			name:         "across module boundary",
			topicID:      20,
			expectedPred: 11,
			expectedOK:   true,
		},
		{
			name:       "unknown topic",
			topicID:    999,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, ok := shape.PredecessorOf(tt.topicID)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedPred, pred)
			}
		})
	}
}

func TestCourseShape_JSONRoundTrip(t *testing.T) {
	original := buildShape()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored CourseShape
	require.NoError(t, json.Unmarshal(data, &restored))

	// Indexes must be rebuilt, not just the raw fields
	assert.Equal(t, original.Course, restored.Course)
	assert.Equal(t, original.Modules, restored.Modules)
	assert.Equal(t, original.TopicIDs(), restored.TopicIDs())
	assert.Equal(t, original.Questions(11), restored.Questions(11))

	pred, ok := restored.PredecessorOf(20)
	assert.True(t, ok)
	assert.Equal(t, 11, pred)
}

func TestNewCourseShape_Empty(t *testing.T) {
	shape := NewCourseShape(Course{ID: 1}, nil, nil, nil)

	assert.Empty(t, shape.TopicIDs())
	_, ok := shape.PredecessorOf(1)
	assert.False(t, ok)
}
