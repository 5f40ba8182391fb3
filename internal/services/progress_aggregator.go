package services

import "github.com/skillvalley/training-service/internal/models"

// AggregateProgress derives module and course completion percentages from the
// completed-topic set and the current catalog shape. It is a pure derivation:
// nothing here is persisted, so percentages can never drift from the ledger.
//
// Percentages use floor division so that 100% is reported only when every
// topic in the current shape is completed. Topics recorded in the ledger but
// no longer present in the shape are excluded from both numerator and
// denominator; a module with zero topics is 0%, not 100%.
func AggregateProgress(shape *models.CourseShape, completed map[int]bool) *models.ProgressResponse {
	resp := &models.ProgressResponse{
		Modules: make([]models.ModuleProgress, 0, len(shape.Modules)),
	}

	totalTopics := 0
	totalCompleted := 0

	for _, m := range shape.Modules {
		topicIDs := shape.ModuleTopicIDs(m.ID)
		moduleCompleted := 0
		for _, topicID := range topicIDs {
			if completed[topicID] {
				moduleCompleted++
			}
		}

		mp := models.ModuleProgress{
			ModuleID:        m.ID,
			Title:           m.Title,
			CompletedTopics: moduleCompleted,
			TotalTopics:     len(topicIDs),
		}
		if len(topicIDs) > 0 {
			mp.CompletionPercent = 100 * moduleCompleted / len(topicIDs)
		}
		resp.Modules = append(resp.Modules, mp)

		totalTopics += len(topicIDs)
		totalCompleted += moduleCompleted
	}

	if totalTopics > 0 {
		resp.CourseCompletionPercent = 100 * totalCompleted / totalTopics
	}
	resp.IsCourseComplete = totalTopics > 0 && resp.CourseCompletionPercent == 100
	resp.CertificateEligible = resp.IsCourseComplete && shape.Course.CertificateEnabled

	return resp
}
