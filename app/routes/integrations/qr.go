package integrations

import (
	"encoding/json"
	"time"
)

// defaultQRValidity is the payload lifetime, in minutes, when the teacher
// does not choose one.
const defaultQRValidity = 10

// QRPayload is the opaque string content of a session QR code. Rendering
// the code image is the client's concern; the service only produces and
// consumes the payload.
type QRPayload struct {
	ClassID   string `json:"class_id"`
	SubjectID string `json:"subject_id"`
	TeacherID string `json:"teacher_id"`
	Timestamp int64  `json:"timestamp"`
	Duration  int    `json:"duration"`
}

// NewQRPayload stamps a payload for a class/subject session. duration is in
// minutes; non-positive values fall back to the default.
func NewQRPayload(classID, subjectID, teacherID string, duration int, now time.Time) QRPayload {
	if duration <= 0 {
		duration = defaultQRValidity
	}
	return QRPayload{
		ClassID:   classID,
		SubjectID: subjectID,
		TeacherID: teacherID,
		Timestamp: now.UnixMilli(),
		Duration:  duration,
	}
}

// Encode renders the payload as its wire string.
func (p QRPayload) Encode() (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

// DecodeQRPayload parses a scanned payload string.
func DecodeQRPayload(data string) (QRPayload, error) {
	var p QRPayload
	err := json.Unmarshal([]byte(data), &p)
	return p, err
}

// Expired reports whether the payload's validity window has passed.
func (p QRPayload) Expired(now time.Time) bool {
	duration := p.Duration
	if duration <= 0 {
		duration = defaultQRValidity
	}
	age := now.UnixMilli() - p.Timestamp
	return age > int64(duration)*60*1000
}
