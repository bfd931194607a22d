package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shettypp/ai-syllabus-planner/internal/domain/entity"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase"
	"github.com/shettypp/ai-syllabus-planner/internal/usecase/dto"
)

func TestParseSubjects(t *testing.T) {
	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	inputs := []dto.SubjectInput{
		{Name: " Math ", Topics: "Algebra, Calculus,, ,Algebra", ExamDate: "2024-01-17"},
		{Name: "", Topics: "a", ExamDate: "2024-01-20"},
		{Name: "Art", Topics: "", ExamDate: "2024-01-20"},
		{Name: "Law", Topics: "torts", ExamDate: ""},
		{Name: "Bio", Topics: "cells", ExamDate: "17/01/2024"},
		{Name: "Chem", Topics: "atoms", ExamDate: "2024-01-15"},
		{Name: "Geo", Topics: " , ,", ExamDate: "2024-01-20"},
		{Name: "History", Topics: "wars", ExamDate: "2024-01-16"},
	}

	subjects, skipped, dropped := usecase.ParseSubjects(inputs, today)

	assert.Equal(t, 6, skipped)
	assert.Zero(t, dropped)
	if assert.Len(t, subjects, 2) {
		assert.Equal(t, "Math", subjects[0].Name)
		assert.Equal(t, []string{"Algebra", "Calculus", "Algebra"}, subjects[0].Topics)
		assert.Equal(t, time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC), subjects[0].ExamDate)
		assert.Equal(t, "History", subjects[1].Name)
	}
}

func TestParseSubjects_Empty(t *testing.T) {
	subjects, skipped, dropped := usecase.ParseSubjects(nil, time.Now())
	assert.Empty(t, subjects)
	assert.Zero(t, skipped)
	assert.Zero(t, dropped)
}

func TestParseSubjects_NormalizesUnicode(t *testing.T) {
	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	decomposed := "Ge\u0301ographie"

	subjects, skipped, _ := usecase.ParseSubjects([]dto.SubjectInput{
		{Name: decomposed, Topics: "Re\u0301gions, Climat", ExamDate: "2024-01-20"},
	}, today)

	assert.Zero(t, skipped)
	if assert.Len(t, subjects, 1) {
		assert.Equal(t, "G\u00e9ographie", subjects[0].Name)
		assert.Equal(t, []string{"R\u00e9gions", "Climat"}, subjects[0].Topics)
	}
}

func TestParseSubjects_LengthLimits(t *testing.T) {
	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	longTopic := strings.Repeat("t", entity.MaxTopicLength+1)
	maxName := strings.Repeat("\u00e9", entity.MaxSubjectLength)

	inputs := []dto.SubjectInput{
		{Name: "Math", Topics: "Limits, " + longTopic + ", Series", ExamDate: "2024-01-20"},
		{Name: strings.Repeat("n", entity.MaxSubjectLength+1), Topics: "a", ExamDate: "2024-01-20"},
		{Name: "Art", Topics: longTopic, ExamDate: "2024-01-20"},
		{Name: maxName, Topics: strings.Repeat("x", entity.MaxTopicLength), ExamDate: "2024-01-21"},
	}

	subjects, skipped, dropped := usecase.ParseSubjects(inputs, today)

	assert.Equal(t, 2, skipped)
	assert.Equal(t, 1, dropped)
	if assert.Len(t, subjects, 2) {
		assert.Equal(t, []string{"Limits", "Series"}, subjects[0].Topics)
		assert.Equal(t, maxName, subjects[1].Name)
		assert.Len(t, subjects[1].Topics, 1)
	}
}
