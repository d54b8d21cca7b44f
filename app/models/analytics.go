package models

import "time"

// AnalyticsData is the aggregate dashboard payload.
type AnalyticsData struct {
	TotalStudents     int                  `json:"total_students"`
	TotalClasses      int                  `json:"total_classes"`
	TotalTeachers     int                  `json:"total_teachers"`
	OverallAttendance int                  `json:"overall_attendance"`
	TodayAttendance   int                  `json:"today_attendance"`
	SubjectAttendance []SubjectAttendance  `json:"subject_attendance"`
	ClassPerformance  []ClassPerformance   `json:"class_performance"`
	MonthlyTrend      []int                `json:"monthly_trend"`
	RecentActivity    []AttendanceActivity `json:"recent_activity"`
}

type SubjectAttendance struct {
	Subject    string `json:"subject"`
	Percentage int    `json:"percentage"`
}

type ClassPerformance struct {
	ClassName  string `json:"class_name"`
	Attendance int    `json:"attendance"`
	Students   int    `json:"students"`
}

type AttendanceActivity struct {
	StudentName string    `json:"student_name"`
	SubjectName string    `json:"subject_name"`
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
}

// ReportSummary aggregates a set of attendance records.
type ReportSummary struct {
	Total             int `json:"total"`
	Present           int `json:"present"`
	Absent            int `json:"absent"`
	Late              int `json:"late"`
	PresentPercentage int `json:"present_percentage"`
	AbsentPercentage  int `json:"absent_percentage"`
}

// Percent returns part/total as a rounded integer percentage, 0 when total
// is zero.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
