package models

import "time"

// LessonTakenType marks the per-lesson transaction rows that represent an
// attended lesson. Other types (reschedules, credit adjustments) exist in
// the log but do not contribute attendance dates.
const LessonTakenType = "lesson_taken"

// LessonTransaction is one row of the per-lesson transaction log.
type LessonTransaction struct {
	ID         string    `bson:"id" json:"id"`
	StudentID  string    `bson:"student_id" json:"studentId"`
	Type       string    `bson:"type" json:"type"`
	OccurredAt time.Time `bson:"occurred_at" json:"occurredAt"`
}
