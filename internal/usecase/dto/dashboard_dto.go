package dto

import "github.com/shettypp/ai-syllabus-planner/internal/domain/entity"

// Dashboard is the progress overview of a user
type Dashboard struct {
	TotalTasks           int64
	CompletedTasks       int64
	CompletionPercentage int
	TodaysTasks          []*entity.Task
	OverdueTasksExist    bool
	ChartLabels          []string
	ChartData            []int
}
