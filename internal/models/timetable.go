package models

import (
	"strconv"

	"github.com/lavadevv/timeable-api/pkg/errors"
)

// Term is one academic semester as exposed to clients. Order follows the
// upstream document; the list is never re-sorted.
type Term struct {
	Code      string `json:"termCode"`
	Name      string `json:"termName"`
	StartDate string `json:"termStartDate"`
	EndDate   string `json:"termEndDate"`
}

// LessonPeriod describes one numbered class period's wall-clock slot,
// shared across all weeks of a term.
type LessonPeriod struct {
	Period    int    `json:"lessonPeriod"`
	StartTime string `json:"lessonTimeStart"`
	EndTime   string `json:"lessonTimeEnd"`
	Duration  string `json:"lessonTime"`
}

// ScheduleEntry is one scheduled class occurrence within a week.
type ScheduleEntry struct {
	Weekday           int    `json:"weekday"`
	StartPeriod       int    `json:"lessonPeriodStart"`
	PeriodCount       int    `json:"lessonCount"`
	CourseCode        string `json:"courseCode"`
	CourseName        string `json:"courseName"`
	Credit            string `json:"credit"`
	GroupCode         string `json:"groupCode"`
	PracticeGroupCode string `json:"groupPracticeCode"`
	CombinationCode   string `json:"combinationCode"`
	LecturerCode      string `json:"lecturerCode"`
	LecturerName      string `json:"lecturerName"`
	ClassCode         string `json:"classCode"`
	ClassName         string `json:"className"`
	RoomCode          string `json:"roomCode"`
	IsMakeup          bool   `json:"isMakeupClass"`
	LearnDate         string `json:"learnDay"`
}

// WeekInfo is one academic week within a term, with its date range and the
// sessions scheduled in it (upstream document order).
type WeekInfo struct {
	WeekIndex int             `json:"weekInTerm"`
	Label     string          `json:"weekInfo"`
	StartDate string          `json:"weekStartDate"`
	EndDate   string          `json:"weekEndDate"`
	Sessions  []ScheduleEntry `json:"timeableListInWeekList"`
}

// Schedule is the composite result of a schedule read: the lesson-period
// table and the week list. Both collections are always present, even when
// empty.
type Schedule struct {
	LessonTimeList []LessonPeriod `json:"lessonTimeList"`
	TimeableList   []WeekInfo     `json:"timeableList"`
}

// GetScheduleRequest is the inbound schedule-listing request body.
type GetScheduleRequest struct {
	TermCode string `json:"termCode" binding:"required"`
}

// Upstream schedule request body. The upstream takes a numeric term filter
// plus a fixed paging block and a single ordering entry with both fields
// null (its accepted "no explicit sort" shape).

type scheduleFilter struct {
	TermID   int    `json:"hoc_ky"`
	TermName string `json:"ten_hoc_ky"`
}

type pagingRequest struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
}

type orderingRequest struct {
	Name      *string `json:"name"`
	OrderType *string `json:"order_type"`
}

type additionalRequest struct {
	Paging   pagingRequest     `json:"paging"`
	Ordering []orderingRequest `json:"ordering"`
}

// ScheduleListRequest is the upstream-facing schedule request body.
type ScheduleListRequest struct {
	Filter     scheduleFilter    `json:"filter"`
	Additional additionalRequest `json:"additional"`
}

const (
	defaultPageSize   = 100
	defaultPageNumber = 1
)

// NewScheduleListRequest builds the upstream schedule request body for a
// term code. A non-numeric term code is a caller error, not a transport
// error.
func NewScheduleListRequest(termCode string) (*ScheduleListRequest, error) {
	termID, err := strconv.Atoi(termCode)
	if err != nil {
		return nil, errors.InvalidInputError("termCode", "must be numeric")
	}

	return &ScheduleListRequest{
		Filter: scheduleFilter{
			TermID:   termID,
			TermName: "",
		},
		Additional: additionalRequest{
			Paging:   pagingRequest{Limit: defaultPageSize, Page: defaultPageNumber},
			Ordering: []orderingRequest{{Name: nil, OrderType: nil}},
		},
	}, nil
}

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
