package models

// TopicProgress represents one completed topic in a user's course progress
type TopicProgress struct {
	UserID   int `json:"userId"`
	CourseID int `json:"courseId"`
	TopicID  int `json:"topicId"`
}

// ModuleProgress represents the derived completion percentage of one module
type ModuleProgress struct {
	ModuleID          int    `json:"moduleId"`
	Title             string `json:"title"`
	CompletedTopics   int    `json:"completedTopics"`
	TotalTopics       int    `json:"totalTopics"`
	CompletionPercent int    `json:"completionPercent"`
}

// ProgressResponse represents a user's derived progress in a course.
// Percentages are recomputed on read from the completed set and the current
// catalog shape; they are never stored.
type ProgressResponse struct {
	CompletedTopicIDs       []int            `json:"completedTopicIds"`
	Modules                 []ModuleProgress `json:"moduleProgress"`
	CourseCompletionPercent int              `json:"courseCompletionPercent"`
	IsCourseComplete        bool             `json:"isCourseComplete"`
	CertificateEligible     bool             `json:"certificateEligible"`
}
