package models

import "time"

type Pose string

const (
	PoseFront Pose = "front"
	PoseBack  Pose = "back"
	PoseSide  Pose = "side"
)

func (p Pose) IsValid() bool {
	return p == PoseFront || p == PoseBack || p == PoseSide
}

// ProgressPhoto stores only the S3 key/URL plus metadata; the binary payload
// lives in object storage. Measurements are in cm, weight in kg.
type ProgressPhoto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	FileKey   string    `gorm:"size:512;not null" json:"fileKey"`
	URL       string    `gorm:"size:1024;not null" json:"url"`
	Pose      Pose      `gorm:"size:16;not null" json:"pose"`
	Week      int       `gorm:"not null" json:"week"` // user-assigned week number
	Date      time.Time `gorm:"index;not null" json:"date"`
	Notes     *string   `gorm:"type:text" json:"notes"`

	Weight     *int `json:"weight"`
	Chest      *int `json:"chest"`
	Waist      *int `json:"waist"`
	Hips       *int `json:"hips"`
	LeftArm    *int `json:"leftArm"`
	RightArm   *int `json:"rightArm"`
	LeftThigh  *int `json:"leftThigh"`
	RightThigh *int `json:"rightThigh"`
	LeftCalf   *int `json:"leftCalf"`
	RightCalf  *int `json:"rightCalf"`

	CreatedAt time.Time `json:"createdAt"`
}
