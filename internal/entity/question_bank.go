package entity

import (
	"time"

	"gorm.io/gorm"
)

// QuestionBank - a named collection of questions
type QuestionBank struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	IsLastUsed  bool           `gorm:"not null;default:false;index" json:"is_last_used"`
	Questions   []Question     `gorm:"foreignKey:BankID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuestionBank) TableName() string {
	return "question_banks"
}

// Question - one bank item; options is a JSON array of option texts
type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	BankID        uint      `gorm:"not null;index" json:"bank_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Type          string    `gorm:"size:20;not null;index" json:"type"` // single, multiple, judge
	IsSubquestion bool      `gorm:"not null;default:false" json:"is_subquestion"`
	Options       string    `gorm:"type:text" json:"options"` // JSON array: ["...","..."]
	Difficulty    string    `gorm:"size:20" json:"difficulty"`
	Analysis      string    `gorm:"type:text" json:"analysis"`
	Answer        string    `gorm:"size:30;not null" json:"answer"` // option letters: A, AC
	Score         float64   `gorm:"not null;default:1" json:"score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
