package model

import "gorm.io/gorm"

// PatientProfile represents the demographic data captured at registration
// @Description Patient registration information
type PatientProfile struct {
	gorm.Model
	TCNumber    string `json:"tc_number" gorm:"column:tc_number;uniqueIndex;size:32;not null" example:"12345678901"`
	FullName    string `json:"full_name" gorm:"column:full_name" example:"John Doe"`
	Gender      string `json:"gender" gorm:"column:gender" example:"Male"`
	Age         int    `json:"age" gorm:"column:age" example:"30"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number" example:"081234567890"`
	Address     string `json:"address" gorm:"column:address" example:"123 Main St"`
}
