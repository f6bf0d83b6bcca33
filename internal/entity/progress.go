package entity

import "time"

// QuestionOrder - one slot of the saved presentation order of a (bank, mode)
type QuestionOrder struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	BankID     uint   `gorm:"not null;uniqueIndex:idx_order_slot" json:"bank_id"`
	Mode       string `gorm:"size:20;not null;uniqueIndex:idx_order_slot" json:"mode"`
	Position   int    `gorm:"not null;uniqueIndex:idx_order_slot" json:"position"`
	QuestionID uint   `gorm:"not null" json:"question_id"`
}

func (QuestionOrder) TableName() string {
	return "question_orders"
}

// Progress - latest answer per (bank, mode, question)
type Progress struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	BankID     uint      `gorm:"not null;uniqueIndex:idx_progress_key" json:"bank_id"`
	Mode       string    `gorm:"size:20;not null;uniqueIndex:idx_progress_key" json:"mode"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_progress_key" json:"question_id"`
	UserAnswer string    `gorm:"size:30;not null" json:"user_answer"`
	AnsweredAt time.Time `json:"answered_at"`
}

func (Progress) TableName() string {
	return "progress"
}

// PracticePosition - last visited index per (bank, mode)
type PracticePosition struct {
	BankID    uint      `gorm:"primaryKey;autoIncrement:false" json:"bank_id"`
	Mode      string    `gorm:"primaryKey;size:20" json:"mode"`
	Position  int       `gorm:"not null" json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PracticePosition) TableName() string {
	return "practice_positions"
}

// WrongQuestion - membership of the wrong set with the answer that put it there
type WrongQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	BankID     uint      `gorm:"not null;uniqueIndex:idx_wrong_key" json:"bank_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_wrong_key" json:"question_id"`
	UserAnswer string    `gorm:"size:30" json:"user_answer"`
	AddedAt    time.Time `gorm:"not null;index" json:"added_at"`
	Question   Question  `gorm:"foreignKey:QuestionID" json:"-"`
}

func (WrongQuestion) TableName() string {
	return "wrong_questions"
}

// Config - global key/value settings
type Config struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Key   string `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

func (Config) TableName() string {
	return "configs"
}
