package models

// QuizQuestionView is a quiz question as shown to learners: the correct
// option index is stripped so clients cannot grade locally.
type QuizQuestionView struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Weight  int      `json:"weight"`
}

// TopicView is a topic with its learner-facing quiz questions
type TopicView struct {
	ID        int                `json:"id"`
	Title     string             `json:"title"`
	HasQuiz   bool               `json:"hasQuiz"`
	Questions []QuizQuestionView `json:"questions,omitempty"`
}

// ModuleView is a module with its ordered topics
type ModuleView struct {
	ID     int         `json:"id"`
	Title  string      `json:"title"`
	Topics []TopicView `json:"topics"`
}

// CourseShapeResponse is the learner-facing course tree
type CourseShapeResponse struct {
	ID                    int          `json:"id"`
	Title                 string       `json:"title"`
	PassThreshold         int          `json:"passThreshold"`
	SequentialProgression bool         `json:"sequentialProgression"`
	CertificateEnabled    bool         `json:"certificateEnabled"`
	Modules               []ModuleView `json:"modules"`
}

// ShapeResponse converts an indexed course shape into its learner-facing form
func (s *CourseShape) ShapeResponse() *CourseShapeResponse {
	resp := &CourseShapeResponse{
		ID:                    s.Course.ID,
		Title:                 s.Course.Title,
		PassThreshold:         s.Course.PassThreshold,
		SequentialProgression: s.Course.SequentialProgression,
		CertificateEnabled:    s.Course.CertificateEnabled,
		Modules:               make([]ModuleView, 0, len(s.Modules)),
	}

	for _, m := range s.Modules {
		mv := ModuleView{ID: m.ID, Title: m.Title}
		for _, topicID := range s.ModuleTopicIDs(m.ID) {
			t, _ := s.Topic(topicID)
			tv := TopicView{ID: t.ID, Title: t.Title, HasQuiz: s.HasQuiz(t.ID)}
			for _, q := range s.Questions(t.ID) {
				tv.Questions = append(tv.Questions, QuizQuestionView{
					ID:      q.ID,
					Prompt:  q.Prompt,
					Options: q.Options,
					Weight:  q.Weight,
				})
			}
			mv.Topics = append(mv.Topics, tv)
		}
		resp.Modules = append(resp.Modules, mv)
	}

	return resp
}
