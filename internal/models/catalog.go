package models

import "encoding/json"

// DefaultPassThreshold is used when a course does not define its own threshold
const DefaultPassThreshold = 70

// Course represents a training course in the content catalog
type Course struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	PassThreshold         int    `json:"passThreshold"`
	SequentialProgression bool   `json:"sequentialProgression"`
	CertificateEnabled    bool   `json:"certificateEnabled"`
}

// Module represents an ordered group of topics within a course
type Module struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"courseId"`
	Title       string `json:"title"`
	ModuleOrder int    `json:"moduleOrder"`
}

// Topic represents an atomic content unit within a module.
// Content itself (video, text) is opaque to this service.
type Topic struct {
	ID         int    `json:"id"`
	ModuleID   int    `json:"moduleId"`
	Title      string `json:"title"`
	TopicOrder int    `json:"topicOrder"`
}

// QuizQuestion represents a single quiz question owned by a topic
type QuizQuestion struct {
	ID            int      `json:"id"`
	TopicID       int      `json:"topicId"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Weight        int      `json:"weight"`
	QuestionOrder int      `json:"questionOrder"`
}

// CourseShape is the indexed content tree of a course: modules and topics in
// catalog order, with id-keyed lookups so predecessor checks are O(1) instead
// of repeated linear scans.
type CourseShape struct {
	Course    Course
	Modules   []Module
	topics    map[int]Topic
	questions map[int][]QuizQuestion

	moduleTopicIDs map[int][]int
	topicOrder     []int
	topicPos       map[int]int
}

// NewCourseShape builds an indexed course shape from catalog rows.
// Modules must be in module order; topics and questions in their own order
// within their parent.
func NewCourseShape(course Course, modules []Module, topics []Topic, questions []QuizQuestion) *CourseShape {
	s := &CourseShape{
		Course:         course,
		Modules:        modules,
		topics:         make(map[int]Topic, len(topics)),
		questions:      make(map[int][]QuizQuestion),
		moduleTopicIDs: make(map[int][]int, len(modules)),
		topicPos:       make(map[int]int, len(topics)),
	}

	for _, t := range topics {
		s.topics[t.ID] = t
		s.moduleTopicIDs[t.ModuleID] = append(s.moduleTopicIDs[t.ModuleID], t.ID)
	}

	// Flatten topics into course-wide order: module order first, then topic order.
	// Predecessor of a topic is simply the previous entry in this list.
	for _, m := range modules {
		for _, topicID := range s.moduleTopicIDs[m.ID] {
			s.topicPos[topicID] = len(s.topicOrder)
			s.topicOrder = append(s.topicOrder, topicID)
		}
	}

	for _, q := range questions {
		s.questions[q.TopicID] = append(s.questions[q.TopicID], q)
	}

	return s
}

// Topic returns a topic by ID
func (s *CourseShape) Topic(id int) (Topic, bool) {
	t, ok := s.topics[id]
	return t, ok
}

// Questions returns the ordered quiz questions of a topic (nil if the topic has no quiz)
func (s *CourseShape) Questions(topicID int) []QuizQuestion {
	return s.questions[topicID]
}

// HasQuiz reports whether a topic owns at least one quiz question
func (s *CourseShape) HasQuiz(topicID int) bool {
	return len(s.questions[topicID]) > 0
}

// TopicIDs returns all topic IDs in course-wide catalog order
func (s *CourseShape) TopicIDs() []int {
	return s.topicOrder
}

// ModuleTopicIDs returns the ordered topic IDs of a module
func (s *CourseShape) ModuleTopicIDs(moduleID int) []int {
	return s.moduleTopicIDs[moduleID]
}

// PredecessorOf returns the topic immediately before the given topic in
// course-wide order. The second return value is false for the first topic of
// the course (it has no predecessor).
func (s *CourseShape) PredecessorOf(topicID int) (int, bool) {
	pos, ok := s.topicPos[topicID]
	if !ok || pos == 0 {
		return 0, false
	}
	return s.topicOrder[pos-1], true
}

// courseShapeJSON is the serialized form of CourseShape (indexes are rebuilt on load)
type courseShapeJSON struct {
	Course    Course         `json:"course"`
	Modules   []Module       `json:"modules"`
	Topics    []Topic        `json:"topics"`
	Questions []QuizQuestion `json:"questions"`
}

// MarshalJSON serializes the shape for caching
func (s *CourseShape) MarshalJSON() ([]byte, error) {
	out := courseShapeJSON{
		Course:  s.Course,
		Modules: s.Modules,
	}
	for _, topicID := range s.topicOrder {
		out.Topics = append(out.Topics, s.topics[topicID])
		out.Questions = append(out.Questions, s.questions[topicID]...)
	}
	return json.Marshal(out)
}

// UnmarshalJSON deserializes a cached shape and rebuilds its indexes
func (s *CourseShape) UnmarshalJSON(data []byte) error {
	var in courseShapeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*s = *NewCourseShape(in.Course, in.Modules, in.Topics, in.Questions)
	return nil
}
